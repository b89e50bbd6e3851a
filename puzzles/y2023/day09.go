package y2023

import (
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2023, 9, solveDay09) }

// extrapolate returns the values one step before and after seq, taken from
// its tower of differences.
func extrapolate(seq []int) (prev, next int) {
	zero := true
	for _, v := range seq {
		zero = zero && v == 0
	}
	if zero || len(seq) < 2 {
		if len(seq) == 1 {
			return seq[0], seq[0]
		}
		return 0, 0
	}
	diffs := make([]int, len(seq)-1)
	for i := range diffs {
		diffs[i] = seq[i+1] - seq[i]
	}
	p, n := extrapolate(diffs)
	return seq[0] - p, seq[len(seq)-1] + n
}

func solveDay09(input string) (puzzle.Answer, error) {
	back, forward := 0, 0
	for _, line := range parse.Lines(input) {
		seq, err := parse.Fields(line)
		if err != nil {
			return puzzle.Answer{}, err
		}
		if len(seq) == 0 {
			return puzzle.Answer{}, puzzle.Malformed("empty history")
		}
		p, n := extrapolate(seq)
		back += p
		forward += n
	}
	return puzzle.Answer{Part1: forward, Part2: back}, nil
}
