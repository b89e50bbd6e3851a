package y2015

import (
	"strings"

	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2015, 1, solveDay01) }

func solveDay01(input string) (puzzle.Answer, error) {
	floor, basement := 0, 0
	for i, ch := range strings.TrimSpace(input) {
		switch ch {
		case '(':
			floor++
		case ')':
			floor--
		default:
			return puzzle.Answer{}, puzzle.Malformed("unexpected %q at %d", ch, i)
		}
		if floor == -1 && basement == 0 {
			basement = i + 1
		}
	}
	ans := puzzle.Answer{Part1: floor}
	if basement > 0 {
		ans.Part2 = basement
	}
	return ans, nil
}
