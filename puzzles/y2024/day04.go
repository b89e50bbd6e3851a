package y2024

import (
	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2024, 4, solveDay04) }

// compassRose lists the eight unit steps.
var compassRose = func() []geom.Vector {
	var out []geom.Vector
	origin := geom.L(0, 0)
	for _, n := range origin.Neighbors8() {
		out = append(out, n.Sub(origin))
	}
	return out
}()

func spells(g *grid.Grid[byte], at geom.Location, step geom.Vector, word string) bool {
	for i := range len(word) {
		if b, ok := g.Get(at); !ok || b != word[i] {
			return false
		}
		at = at.Add(step)
	}
	return true
}

func countXMAS(g *grid.Grid[byte]) int {
	n := 0
	for l := range g.All() {
		for _, step := range compassRose {
			if spells(g, l, step, "XMAS") {
				n++
			}
		}
	}
	return n
}

// countCrossMAS counts A cells where both diagonals read MAS either way.
func countCrossMAS(g *grid.Grid[byte]) int {
	n := 0
	for l, b := range g.All() {
		if b != 'A' {
			continue
		}
		ok := true
		for _, d := range []geom.Vector{{DRow: 1, DCol: 1}, {DRow: 1, DCol: -1}} {
			start := l.Add(d.Scale(-1))
			ok = ok && (spells(g, start, d, "MAS") || spells(g, start, d, "SAM"))
		}
		if ok {
			n++
		}
	}
	return n
}

func solveDay04(input string) (puzzle.Answer, error) {
	g, err := grid.Bytes(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: countXMAS(g), Part2: countCrossMAS(g)}, nil
}
