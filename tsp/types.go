package tsp

import "errors"

var (
	// ErrEmptyMatrix is returned for a table with no vertices.
	ErrEmptyMatrix = errors.New("tsp: empty matrix")

	// ErrNonSquare is returned when a row length differs from the row count.
	ErrNonSquare = errors.New("tsp: matrix is not square")

	// ErrTooLarge is returned when n exceeds MaxVertices.
	ErrTooLarge = errors.New("tsp: too many vertices for exact search")
)

// MaxVertices bounds the bitmask tables at 2^n × n entries.
const MaxVertices = 16

// Objective selects whether the tour weight is minimised or maximised.
type Objective int

const (
	Minimize Objective = iota
	Maximize
)

// Options configures Solve.
type Options struct {
	Objective Objective
	// Closed requires returning to the start vertex 0.
	Closed bool
}

// Result is the best route found.
// For closed tours Tour has n+1 entries and begins and ends with 0.
type Result struct {
	Tour []int
	Cost int
}
