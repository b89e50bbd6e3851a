package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/advent/graph"
)

// Inf marks "no path". It is small enough that Inf+Inf does not overflow.
const Inf = math.MaxInt / 4

// Distances is a square row-major distance table.
type Distances struct {
	n    int
	data []int
}

// NewDistances returns an n×n table with 0 on the diagonal and Inf elsewhere.
func NewDistances(n int) (*Distances, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, n)
	}
	d := &Distances{n: n, data: make([]int, n*n)}
	for i := range d.data {
		if i/n != i%n {
			d.data[i] = Inf
		}
	}
	return d, nil
}

// FromRows copies a square table of distances.
func FromRows(rows [][]int) (*Distances, error) {
	d, err := NewDistances(len(rows))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != d.n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrBadSize, i, len(row), d.n)
		}
		copy(d.data[i*d.n:], row)
	}
	return d, nil
}

// FromGraph builds the edge-weight table of g. Vertex i of the table is
// index[i]; parallel edges keep the lighter weight.
func FromGraph[K comparable](g *graph.Graph[K]) (*Distances, []K, error) {
	index := g.Vertices()
	d, err := NewDistances(len(index))
	if err != nil {
		return nil, nil, err
	}
	pos := make(map[K]int, len(index))
	for i, v := range index {
		pos[v] = i
	}
	for _, e := range g.Edges() {
		i, j := pos[e.From], pos[e.To]
		if i != j && e.Weight < d.data[i*d.n+j] {
			d.data[i*d.n+j] = e.Weight
		}
	}
	return d, index, nil
}

// Len returns the order n.
func (d *Distances) Len() int { return d.n }

// At returns the distance i→j.
func (d *Distances) At(i, j int) (int, error) {
	if err := d.check(i, j); err != nil {
		return 0, err
	}
	return d.data[i*d.n+j], nil
}

// MustAt is At for indices known to be valid; it panics otherwise.
func (d *Distances) MustAt(i, j int) int {
	v, err := d.At(i, j)
	if err != nil {
		panic(err)
	}
	return v
}

// Set stores the distance i→j.
func (d *Distances) Set(i, j, v int) error {
	if err := d.check(i, j); err != nil {
		return err
	}
	d.data[i*d.n+j] = v
	return nil
}

// Rows returns a copy as a slice of rows.
func (d *Distances) Rows() [][]int {
	out := make([][]int, d.n)
	for i := range out {
		out[i] = append([]int(nil), d.data[i*d.n:(i+1)*d.n]...)
	}
	return out
}

func (d *Distances) check(i, j int) error {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, i, j, d.n, d.n)
	}
	return nil
}
