// Package bfs provides breadth-first search over an implicit graph: the
// caller supplies a neighbors function instead of a materialised graph, so
// grid cells, game states and graph.Graph vertices are all searched alike.
//
// What
//
//   - Explore states in non-decreasing distance (step count) from one or
//     more starts.
//   - Search returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from state → distance from the nearest start
//   - Parent: map from state → its predecessor in the BFS tree
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - ShortestPath stops at the first state satisfying a goal predicate.
//
// Determinism
//
//	States are enqueued in the order the neighbors function returns them,
//	so the visit sequence is fully reproducible.
//
// Complexity
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
