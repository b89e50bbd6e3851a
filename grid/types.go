package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Connectivity selects orthogonal (Conn4) or orthogonal+diagonal (Conn8) neighbors.
type Connectivity int

const (
	// Conn4 uses N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

// Grid is a rectangular 2D array of cells. Cells[row][col] holds the value
// at geom.Location{Row: row, Col: col}.
type Grid[T any] struct {
	Width, Height int
	Cells         [][]T
}
