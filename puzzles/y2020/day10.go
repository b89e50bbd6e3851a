package y2020

import (
	"slices"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2020, 10, solveDay10) }

func solveDay10(input string) (puzzle.Answer, error) {
	adapters, err := parse.Ints(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if len(adapters) == 0 {
		return puzzle.Answer{}, puzzle.Malformed("no adapters")
	}
	slices.Sort(adapters)
	chain := append([]int{0}, adapters...)
	chain = append(chain, chain[len(chain)-1]+3)

	var diffs [4]int
	// ways[i] counts arrangements reaching chain[i]
	ways := make([]int, len(chain))
	ways[0] = 1
	for i := 1; i < len(chain); i++ {
		d := chain[i] - chain[i-1]
		if d < 1 || d > 3 {
			return puzzle.Answer{}, puzzle.Malformed("joltage gap %d between %d and %d", d, chain[i-1], chain[i])
		}
		diffs[d]++
		for j := i - 1; j >= 0 && chain[i]-chain[j] <= 3; j-- {
			ways[i] += ways[j]
		}
	}
	return puzzle.Answer{Part1: diffs[1] * diffs[3], Part2: ways[len(ways)-1]}, nil
}
