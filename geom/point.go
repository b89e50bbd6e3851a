package geom

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Pt2 is a 2D point or vector with signed integer components.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Pt is the common int instantiation.
type Pt = Pt2[int]

// P is shorthand for Pt{x, y}.
func P(x, y int) Pt { return Pt{X: x, Y: y} }

// Add returns p+q.
func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] { return Pt2[T]{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Pt2[T]) Sub(q Pt2[T]) Pt2[T] { return Pt2[T]{p.X - q.X, p.Y - q.Y} }

// Scale returns k*p.
func (p Pt2[T]) Scale(k T) Pt2[T] { return Pt2[T]{p.X * k, p.Y * k} }

// Neg returns -p.
func (p Pt2[T]) Neg() Pt2[T] { return Pt2[T]{-p.X, -p.Y} }

// Sign returns p with each component clamped to -1, 0 or 1.
func (p Pt2[T]) Sign() Pt2[T] { return Pt2[T]{sign(p.X), sign(p.Y)} }

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|.
func (p Pt2[T]) Manhattan(q Pt2[T]) T {
	return Abs(p.X-q.X) + Abs(p.Y-q.Y)
}

// Chebyshev returns max(|p.X-q.X|, |p.Y-q.Y|).
func (p Pt2[T]) Chebyshev(q Pt2[T]) T {
	return max(Abs(p.X-q.X), Abs(p.Y-q.Y))
}

// RotateRight turns the vector a quarter turn clockwise on screen.
func (p Pt2[T]) RotateRight() Pt2[T] { return Pt2[T]{-p.Y, p.X} }

// RotateLeft turns the vector a quarter turn counter-clockwise on screen.
func (p Pt2[T]) RotateLeft() Pt2[T] { return Pt2[T]{p.Y, -p.X} }

// Neighbors4 returns the orthogonal neighbors in Up, Right, Down, Left order.
func (p Pt2[T]) Neighbors4() [4]Pt2[T] {
	return [4]Pt2[T]{
		{p.X, p.Y - 1},
		{p.X + 1, p.Y},
		{p.X, p.Y + 1},
		{p.X - 1, p.Y},
	}
}

// Neighbors8 returns all eight surrounding points, row by row.
func (p Pt2[T]) Neighbors8() [8]Pt2[T] {
	var out [8]Pt2[T]
	i := 0
	for dy := T(-1); dy <= 1; dy++ {
		for dx := T(-1); dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out[i] = Pt2[T]{p.X + dx, p.Y + dy}
			i++
		}
	}
	return out
}

// String renders "x,y".
func (p Pt2[T]) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// Abs returns |x|.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func sign[T constraints.Signed](x T) T {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
