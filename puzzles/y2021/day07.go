package y2021

import (
	"slices"

	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2021, 7, solveDay07) }

// alignFuel returns the cheapest total fuel over every target position
// given a per-crab cost of the distance moved.
func alignFuel(crabs []int, cost func(dist int) int) int {
	lo, hi := slices.Min(crabs), slices.Max(crabs)
	best := -1
	for target := lo; target <= hi; target++ {
		sum := 0
		for _, c := range crabs {
			sum += cost(geom.Abs(c - target))
		}
		if best < 0 || sum < best {
			best = sum
		}
	}
	return best
}

func solveDay07(input string) (puzzle.Answer, error) {
	crabs, err := parse.Split(input, ",")
	if err != nil {
		return puzzle.Answer{}, err
	}
	linear := alignFuel(crabs, func(d int) int { return d })
	triangular := alignFuel(crabs, func(d int) int { return d * (d + 1) / 2 })
	return puzzle.Answer{Part1: linear, Part2: triangular}, nil
}
