// Package graph defines a small generic adjacency-list graph used by the
// puzzles that read an explicit list of edges: orbit maps, bag rules,
// valve tunnels, page-ordering rules, city distances.
//
// What:
//
//   - Graph[K] is directed or undirected with integer edge weights.
//   - Vertices are reported in insertion order and neighbors in the order
//     their edges were added, so every traversal is deterministic.
//   - Induced and Reverse derive new graphs for subset and upstream queries.
//
// Complexity:
//
//   - AddVertex, AddEdge, HasEdge, Weight: O(1) amortised.
//   - Neighbors: O(1) (returns the stored slice; do not modify).
//   - Induced: O(V + E).
//
// Errors:
//
//   - ErrVertexNotFound: a query names a vertex that was never added.
package graph
