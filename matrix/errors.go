package matrix

import "errors"

var (
	// ErrOutOfRange indicates a row or column index outside [0,n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadSize indicates a non-positive or non-square shape.
	ErrBadSize = errors.New("matrix: invalid size")
)
