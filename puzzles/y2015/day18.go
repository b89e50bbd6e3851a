package y2015

import (
	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2015, 18, solveDay18) }

// animate runs steps generations of the light grid and returns how many
// lights are on. With stuck, the four corners are always on.
func animate(g *grid.Grid[byte], steps int, stuck bool) int {
	cur := g.Clone()
	corners := []geom.Location{
		geom.L(0, 0), geom.L(0, g.Width-1), geom.L(g.Height-1, 0), geom.L(g.Height-1, g.Width-1),
	}
	pin := func(x *grid.Grid[byte]) {
		if stuck {
			for _, c := range corners {
				x.Set(c, '#')
			}
		}
	}
	pin(cur)
	for range steps {
		next := cur.Clone()
		for l, v := range cur.All() {
			on := 0
			for n := range cur.Neighbors(l, grid.Conn8) {
				if cur.At(n) == '#' {
					on++
				}
			}
			switch {
			case v == '#' && on != 2 && on != 3:
				next.Set(l, '.')
			case v == '.' && on == 3:
				next.Set(l, '#')
			}
		}
		pin(next)
		cur = next
	}
	return cur.Count(func(b byte) bool { return b == '#' })
}

func solveDay18(input string) (puzzle.Answer, error) {
	g, err := grid.Bytes(input)
	if err != nil {
		return puzzle.Answer{}, puzzle.Malformed("%v", err)
	}
	return puzzle.Answer{Part1: animate(g, 100, false), Part2: animate(g, 100, true)}, nil
}
