package y2021

import (
	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2021, 11, solveDay11) }

// octopusStep advances the cavern one step in place and returns how many
// octopuses flashed.
func octopusStep(g *grid.Grid[int]) int {
	var ready []geom.Location
	for l := range g.All() {
		g.Set(l, g.At(l)+1)
		if g.At(l) == 10 {
			ready = append(ready, l)
		}
	}
	for i := 0; i < len(ready); i++ {
		for n := range g.Neighbors(ready[i], grid.Conn8) {
			g.Set(n, g.At(n)+1)
			if g.At(n) == 10 {
				ready = append(ready, n)
			}
		}
	}
	for _, l := range ready {
		g.Set(l, 0)
	}
	return len(ready)
}

func solveDay11(input string) (puzzle.Answer, error) {
	g, err := grid.Digits(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	total, size := 0, g.Width*g.Height
	var ans puzzle.Answer
	for step := 1; ans.Part1 == nil || ans.Part2 == nil; step++ {
		flashed := octopusStep(g)
		total += flashed
		if step == 100 {
			ans.Part1 = total
		}
		if flashed == size && ans.Part2 == nil {
			ans.Part2 = step
		}
		if step > 1_000_000 {
			return puzzle.Answer{}, puzzle.ErrNoSolution
		}
	}
	return ans, nil
}
