package y2020

import (
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2020, 3, solveDay03) }

var slopes = [][2]int{{1, 1}, {3, 1}, {5, 1}, {7, 1}, {1, 2}}

// treesHit counts the trees met going right, down per step. The map repeats
// endlessly to the right.
func treesHit(g *grid.Grid[byte], right, down int) int {
	n := 0
	for r, c := 0, 0; r < g.Height; r, c = r+down, c+right {
		if g.Cells[r][c%g.Width] == '#' {
			n++
		}
	}
	return n
}

func solveDay03(input string) (puzzle.Answer, error) {
	g, err := grid.Bytes(input)
	if err != nil {
		return puzzle.Answer{}, puzzle.Malformed("tree map: %v", err)
	}
	product := 1
	for _, s := range slopes {
		product *= treesHit(g, s[0], s[1])
	}
	return puzzle.Answer{Part1: treesHit(g, 3, 1), Part2: product}, nil
}
