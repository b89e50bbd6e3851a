package geom

import "fmt"

// Location addresses a grid cell by row and column.
type Location struct {
	Row, Col int
}

// Vector is a step between Locations.
type Vector struct {
	DRow, DCol int
}

// L is shorthand for Location{row, col}.
func L(row, col int) Location { return Location{Row: row, Col: col} }

// Neighbors returns the four orthogonally adjacent locations.
func (l Location) Neighbors() [4]Location {
	return [4]Location{
		{l.Row - 1, l.Col},
		{l.Row, l.Col + 1},
		{l.Row + 1, l.Col},
		{l.Row, l.Col - 1},
	}
}

// Neighbors8 returns the eight surrounding locations, row by row.
func (l Location) Neighbors8() [8]Location {
	var out [8]Location
	i := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			out[i] = Location{l.Row + dr, l.Col + dc}
			i++
		}
	}
	return out
}

// Add moves l by v.
func (l Location) Add(v Vector) Location { return Location{l.Row + v.DRow, l.Col + v.DCol} }

// Sub returns the vector from m to l.
func (l Location) Sub(m Location) Vector { return Vector{l.Row - m.Row, l.Col - m.Col} }

// Step moves l one cell in direction d.
func (l Location) Step(d Direction) Location { return l.Add(d.Vector()) }

// Manhattan returns the taxicab distance between l and m.
func (l Location) Manhattan(m Location) int {
	return Abs(l.Row-m.Row) + Abs(l.Col-m.Col)
}

// Pt converts to a point with X=Col and Y=Row.
func (l Location) Pt() Pt { return Pt{X: l.Col, Y: l.Row} }

// String renders "(row,col)".
func (l Location) String() string { return fmt.Sprintf("(%d,%d)", l.Row, l.Col) }

// Add returns v+w.
func (v Vector) Add(w Vector) Vector { return Vector{v.DRow + w.DRow, v.DCol + w.DCol} }

// Sub returns v-w.
func (v Vector) Sub(w Vector) Vector { return Vector{v.DRow - w.DRow, v.DCol - w.DCol} }

// Scale returns k*v.
func (v Vector) Scale(k int) Vector { return Vector{v.DRow * k, v.DCol * k} }

// TurnRight rotates v a quarter turn clockwise (Up becomes Right).
func (v Vector) TurnRight() Vector { return Vector{v.DCol, -v.DRow} }

// TurnLeft rotates v a quarter turn counter-clockwise (Up becomes Left).
func (v Vector) TurnLeft() Vector { return Vector{-v.DCol, v.DRow} }
