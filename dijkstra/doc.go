// Package dijkstra implements Dijkstra's shortest-path algorithm over an
// implicit weighted graph described by a neighbors function.
//
// States are processed in order of increasing distance using a min-heap
// priority queue. Costs must be non-negative.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap holds up to E entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - A "lazy" decrease-key strategy pushes duplicates into the heap and
//     ignores stale entries on pop.
//   - A negative edge cost aborts the run with ErrNegativeWeight.
//   - Ties in distance are broken by push order so runs are deterministic.
package dijkstra
