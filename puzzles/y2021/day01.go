package y2021

import (
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2021, 1, solveDay01) }

// increases counts depths deeper than the one window places earlier.
// Comparing sums of adjacent windows reduces to comparing their
// non-shared ends.
func increases(depths []int, window int) int {
	n := 0
	for i := window; i < len(depths); i++ {
		if depths[i] > depths[i-window] {
			n++
		}
	}
	return n
}

func solveDay01(input string) (puzzle.Answer, error) {
	depths, err := parse.IntLines(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: increases(depths, 1), Part2: increases(depths, 3)}, nil
}
