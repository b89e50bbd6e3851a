package grid

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

// New returns a w×h grid filled with fill.
func New[T any](w, h int, fill T) *Grid[T] {
	cells := make([][]T, h)
	for r := range cells {
		cells[r] = make([]T, w)
		for c := range cells[r] {
			cells[r][c] = fill
		}
	}
	return &Grid[T]{Width: w, Height: h, Cells: cells}
}

// FromRows wraps rows after checking they form a non-empty rectangle.
// The rows are copied.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	cells := make([][]T, len(rows))
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		cells[r] = append([]T(nil), row...)
	}
	return &Grid[T]{Width: w, Height: len(rows), Cells: cells}, nil
}

// Parse decodes lines into a grid, calling decode for every rune.
func Parse[T any](lines []string, decode func(r rune) (T, error)) (*Grid[T], error) {
	rows := make([][]T, len(lines))
	for r, line := range lines {
		row := make([]T, 0, len(line))
		for _, ch := range line {
			v, err := decode(ch)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", r, err)
			}
			row = append(row, v)
		}
		rows[r] = row
	}
	return FromRows(rows)
}

// Bytes parses text into a grid of its raw bytes.
func Bytes(text string) (*Grid[byte], error) {
	lines := parse.Lines(text)
	rows := make([][]byte, len(lines))
	for i, l := range lines {
		rows[i] = []byte(l)
	}
	return FromRows(rows)
}

// Digits parses text into a grid of single decimal digits.
func Digits(text string) (*Grid[int], error) {
	return Parse(parse.Lines(text), func(r rune) (int, error) {
		if r < '0' || r > '9' {
			return 0, puzzle.Malformed("not a digit: %q", r)
		}
		return int(r - '0'), nil
	})
}

// InBounds reports whether l lies within the grid.
func (g *Grid[T]) InBounds(l geom.Location) bool {
	return l.Row >= 0 && l.Row < g.Height && l.Col >= 0 && l.Col < g.Width
}

// At returns the cell at l. It panics if l is out of bounds.
func (g *Grid[T]) At(l geom.Location) T { return g.Cells[l.Row][l.Col] }

// Get returns the cell at l and whether l is in bounds.
func (g *Grid[T]) Get(l geom.Location) (T, bool) {
	if !g.InBounds(l) {
		var zero T
		return zero, false
	}
	return g.Cells[l.Row][l.Col], true
}

// Set stores v at l. It panics if l is out of bounds.
func (g *Grid[T]) Set(l geom.Location, v T) { g.Cells[l.Row][l.Col] = v }

// All iterates every cell in row-major order.
func (g *Grid[T]) All() iter.Seq2[geom.Location, T] {
	return func(yield func(geom.Location, T) bool) {
		for r, row := range g.Cells {
			for c, v := range row {
				if !yield(geom.Location{Row: r, Col: c}, v) {
					return
				}
			}
		}
	}
}

// Find returns the first location (row-major) whose cell satisfies match.
func (g *Grid[T]) Find(match func(T) bool) (geom.Location, bool) {
	for l, v := range g.All() {
		if match(v) {
			return l, true
		}
	}
	return geom.Location{}, false
}

// Count returns how many cells satisfy match.
func (g *Grid[T]) Count(match func(T) bool) int {
	n := 0
	for _, v := range g.All() {
		if match(v) {
			n++
		}
	}
	return n
}

// Neighbors iterates the in-bounds neighbors of l.
func (g *Grid[T]) Neighbors(l geom.Location, conn Connectivity) iter.Seq[geom.Location] {
	return func(yield func(geom.Location) bool) {
		if conn == Conn8 {
			for _, n := range l.Neighbors8() {
				if g.InBounds(n) && !yield(n) {
					return
				}
			}
			return
		}
		for _, n := range l.Neighbors() {
			if g.InBounds(n) && !yield(n) {
				return
			}
		}
	}
}

// Clone returns a deep copy.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([][]T, g.Height)
	for r := range cells {
		cells[r] = append([]T(nil), g.Cells[r]...)
	}
	return &Grid[T]{Width: g.Width, Height: g.Height, Cells: cells}
}

// Transpose returns a copy with rows and columns swapped.
func (g *Grid[T]) Transpose() *Grid[T] {
	out := New(g.Height, g.Width, *new(T))
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			out.Cells[c][r] = g.Cells[r][c]
		}
	}
	return out
}

// FlipH returns a copy mirrored left to right.
func (g *Grid[T]) FlipH() *Grid[T] {
	out := g.Clone()
	for _, row := range out.Cells {
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
	return out
}

// Rotate returns a copy turned a quarter turn clockwise.
func (g *Grid[T]) Rotate() *Grid[T] {
	return g.Transpose().FlipH()
}

// Row returns a copy of row r.
func (g *Grid[T]) Row(r int) []T { return append([]T(nil), g.Cells[r]...) }

// Col returns a copy of column c.
func (g *Grid[T]) Col(c int) []T {
	out := make([]T, g.Height)
	for r := range out {
		out[r] = g.Cells[r][c]
	}
	return out
}

// String renders the grid one row per line using fmt's %v for each cell,
// or the raw byte for byte grids.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	for r, row := range g.Cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range row {
			if b, ok := any(v).(byte); ok {
				sb.WriteByte(b)
				continue
			}
			fmt.Fprint(&sb, v)
		}
	}
	return sb.String()
}
