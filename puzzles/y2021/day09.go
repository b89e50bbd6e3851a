package y2021

import (
	"slices"

	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2021, 9, solveDay09) }

func lowPointRisk(g *grid.Grid[int]) int {
	risk := 0
	for l, h := range g.All() {
		low := true
		for n := range g.Neighbors(l, grid.Conn4) {
			if g.At(n) <= h {
				low = false
				break
			}
		}
		if low {
			risk += h + 1
		}
	}
	return risk
}

// basinProduct multiplies the sizes of the three largest basins. Basins are
// the regions bounded by height 9.
func basinProduct(g *grid.Grid[int]) (int, error) {
	basins := g.Components(grid.Conn4, func(h int) bool { return h < 9 })
	if len(basins) < 3 {
		return 0, puzzle.ErrNoSolution
	}
	sizes := make([]int, len(basins))
	for i, b := range basins {
		sizes[i] = len(b)
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)
	return sizes[0] * sizes[1] * sizes[2], nil
}

func solveDay09(input string) (puzzle.Answer, error) {
	g, err := grid.Digits(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	product, err := basinProduct(g)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: lowPointRisk(g), Part2: product}, nil
}
