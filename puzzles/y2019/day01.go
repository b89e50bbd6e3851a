package y2019

import (
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2019, 1, solveDay01) }

func fuel(mass int) int { return max(mass/3-2, 0) }

// totalFuel also fuels the fuel, until the increment drops to zero.
func totalFuel(mass int) int {
	sum := 0
	for f := fuel(mass); f > 0; f = fuel(f) {
		sum += f
	}
	return sum
}

func solveDay01(input string) (puzzle.Answer, error) {
	masses, err := parse.IntLines(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	simple, full := 0, 0
	for _, m := range masses {
		simple += fuel(m)
		full += totalFuel(m)
	}
	return puzzle.Answer{Part1: simple, Part2: full}, nil
}
