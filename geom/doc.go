// Package geom provides the small value types shared by grid puzzles:
// a generic 2D point/vector, a row/column Location with its step Vector,
// and the four compass Directions.
//
// Conventions:
//
//   - Pt2 uses screen coordinates: X grows rightward, Y grows downward, so
//     Up is {0,-1}. RotateRight is therefore clockwise on screen.
//   - Location addresses a cell by Row then Col, matching how inputs are
//     read line by line.
//
// All types are comparable values and safe to use as map keys.
package geom
