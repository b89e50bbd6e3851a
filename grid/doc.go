// Package grid treats a rectangular block of puzzle text as a 2D grid of
// cells, addressed by geom.Location, with the neighbor and flood-fill
// queries most grid puzzles need.
//
// What:
//
//   - Grid[T] wraps a rectangular [][]T; Parse builds one from lines with a
//     per-rune decoder, Bytes and Digits cover the two common cases.
//   - Neighbors yields in-bounds neighbors under Conn4 or Conn8.
//   - Components finds contiguous regions of cells accepted by a predicate.
//   - Rotate, FlipH and Transpose return reoriented copies.
//
// Complexity:
//
//   - Components: O(W×H×d), Memory: O(W×H)   (d = 4 or 8 neighbors).
//   - Rotate / FlipH / Transpose: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package grid
