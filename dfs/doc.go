// Package dfs provides depth-first algorithms on graph.Graph: pre-order
// traversal, topological sort and cycle detection.
//
// Every traversal starts from vertices in insertion order and follows edges
// in insertion order, so results are deterministic.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) (recursion stack and state map)
package dfs
