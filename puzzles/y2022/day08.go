package y2022

import (
	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2022, 8, solveDay08) }

// lookFrom walks from a tree towards an edge. It reports how many trees are
// seen before the view is blocked and whether the edge was reached.
func lookFrom(g *grid.Grid[int], from geom.Location, d geom.Direction) (seen int, edge bool) {
	h := g.At(from)
	for l := from.Step(d); g.InBounds(l); l = l.Step(d) {
		seen++
		if g.At(l) >= h {
			return seen, false
		}
	}
	return seen, true
}

func solveDay08(input string) (puzzle.Answer, error) {
	g, err := grid.Digits(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	visible, best := 0, 0
	for l := range g.All() {
		score, outside := 1, false
		for _, d := range geom.Directions {
			seen, edge := lookFrom(g, l, d)
			score *= seen
			outside = outside || edge
		}
		if outside {
			visible++
		}
		best = max(best, score)
	}
	return puzzle.Answer{Part1: visible, Part2: best}, nil
}
