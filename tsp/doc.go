// Package tsp solves small travelling-salesman instances exactly with the
// Held–Karp bitmask dynamic program.
//
// Two variants are supported through Options:
//
//   - Closed tours start and end at vertex 0 (the classic cycle).
//   - Open paths visit every vertex once and may start and end anywhere.
//
// Either can minimise or maximise the total weight. The input is a dense
// n×n table; the diagonal is ignored.
//
// Complexity:
//
//   - Time:   O(n² · 2ⁿ)
//   - Memory: O(n · 2ⁿ)
package tsp
