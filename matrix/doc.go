// Package matrix provides a dense n×n integer distance table and the
// Floyd–Warshall all-pairs shortest-path closure over it.
//
// Matrices are best for dense or small graphs where O(V²) memory and O(V³)
// closure time are acceptable, such as the handful of interesting valves in a
// tunnel network or the cities of a routing puzzle.
package matrix
