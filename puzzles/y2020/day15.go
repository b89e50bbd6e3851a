package y2020

import (
	"slices"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2020, 15, solveDay15) }

// spoken returns the nth number of the memory game. last[v] holds the turn
// (1-based) on which v was last spoken before the current turn; 0 means
// never.
func spoken(start []int, n int) int {
	last := make([]int32, max(n, slices.Max(start)+1))
	for i, v := range start[:len(start)-1] {
		last[v] = int32(i + 1)
	}
	cur := start[len(start)-1]
	for turn := len(start); turn < n; turn++ {
		prev := last[cur]
		last[cur] = int32(turn)
		if prev == 0 {
			cur = 0
		} else {
			cur = turn - int(prev)
		}
	}
	return cur
}

func solveDay15(input string) (puzzle.Answer, error) {
	start, err := parse.Split(input, ",")
	if err != nil {
		return puzzle.Answer{}, err
	}
	for _, v := range start {
		if v < 0 || v >= 30_000_000 {
			return puzzle.Answer{}, puzzle.Malformed("starting number %d out of range", v)
		}
	}
	return puzzle.Answer{Part1: spoken(start, 2020), Part2: spoken(start, 30_000_000)}, nil
}
