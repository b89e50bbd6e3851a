package y2022

import (
	"strings"

	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2022, 6, solveDay06) }

// markerEnd returns the number of characters read when the last n were
// all distinct.
func markerEnd(s string, n int) (int, bool) {
	var last [256]int // 1-based index of last sighting
	start := 0
	for i := 0; i < len(s); i++ {
		if p := last[s[i]]; p > start {
			start = p
		}
		last[s[i]] = i + 1
		if i+1-start == n {
			return i + 1, true
		}
	}
	return 0, false
}

func solveDay06(input string) (puzzle.Answer, error) {
	s := strings.TrimSpace(input)
	var ans puzzle.Answer
	if n, ok := markerEnd(s, 4); ok {
		ans.Part1 = n
	}
	if n, ok := markerEnd(s, 14); ok {
		ans.Part2 = n
	}
	if ans.Part1 == nil {
		return puzzle.Answer{}, puzzle.ErrNoSolution
	}
	return ans, nil
}
