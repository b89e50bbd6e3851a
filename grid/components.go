package grid

import "github.com/katalvlaran/advent/geom"

// Components finds all contiguous regions of cells for which in(cell) holds,
// linked under conn. Regions are reported in row-major order of their first
// cell; cells within a region are in BFS order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid[T]) Components(conn Connectivity, in func(T) bool) [][]geom.Location {
	return g.Regions(conn, func(a, _ T) bool { return in(a) }, in)
}

// Regions generalises Components: a region grows from a seed accepted by in
// to every neighbor n of a member m for which same(at(m), at(n)) holds.
// Garden plots of one plant type, for example, use same = equality.
func (g *Grid[T]) Regions(conn Connectivity, same func(a, b T) bool, in func(T) bool) [][]geom.Location {
	seen := New(g.Width, g.Height, false)
	var comps [][]geom.Location

	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			start := geom.Location{Row: r, Col: c}
			if seen.At(start) || !in(g.At(start)) {
				continue
			}
			seen.Set(start, true)
			queue := []geom.Location{start}
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for v := range g.Neighbors(u, conn) {
					if seen.At(v) || !in(g.At(v)) || !same(g.At(u), g.At(v)) {
						continue
					}
					seen.Set(v, true)
					queue = append(queue, v)
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// Flood returns every cell reachable from start through cells accepted by
// pass, start included, in BFS order. start itself is not tested.
func (g *Grid[T]) Flood(start geom.Location, conn Connectivity, pass func(T) bool) []geom.Location {
	if !g.InBounds(start) {
		return nil
	}
	seen := map[geom.Location]bool{start: true}
	queue := []geom.Location{start}
	for qi := 0; qi < len(queue); qi++ {
		for v := range g.Neighbors(queue[qi], conn) {
			if seen[v] || !pass(g.At(v)) {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}
	return queue
}
