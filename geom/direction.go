package geom

import (
	"errors"
	"fmt"
)

// ErrBadDirection is returned when a rune does not name a direction.
var ErrBadDirection = errors.New("geom: unknown direction")

// Direction is one of the four compass directions, clockwise from Up.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists all four in clockwise order.
var Directions = [4]Direction{Up, Right, Down, Left}

// Turn rotates d a quarter turn; right selects clockwise.
func (d Direction) Turn(right bool) Direction {
	if right {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

// Opposite returns the direction facing back.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// Vector returns the one-cell step in d.
func (d Direction) Vector() Vector {
	switch d {
	case Up:
		return Vector{-1, 0}
	case Right:
		return Vector{0, 1}
	case Down:
		return Vector{1, 0}
	default:
		return Vector{0, -1}
	}
}

// Pt returns the one-cell step in d in screen coordinates.
func (d Direction) Pt() Pt {
	v := d.Vector()
	return Pt{X: v.DCol, Y: v.DRow}
}

// String renders the arrow for d.
func (d Direction) String() string {
	return [4]string{"^", ">", "v", "<"}[d%4]
}

// ParseDirection accepts U/D/L/R, N/E/S/W and ^ v < >.
func ParseDirection(r rune) (Direction, error) {
	switch r {
	case 'U', 'N', '^':
		return Up, nil
	case 'R', 'E', '>':
		return Right, nil
	case 'D', 'S', 'v':
		return Down, nil
	case 'L', 'W', '<':
		return Left, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDirection, r)
}
