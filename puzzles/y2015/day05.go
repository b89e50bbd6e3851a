package y2015

import (
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2015, 5, solveDay05) }

func solveDay05(input string) (puzzle.Answer, error) {
	n1, n2 := 0, 0
	for _, s := range parse.Lines(input) {
		if niceOld(s) {
			n1++
		}
		if niceNew(s) {
			n2++
		}
	}
	return puzzle.Answer{Part1: n1, Part2: n2}, nil
}

func niceOld(s string) bool {
	for _, bad := range []string{"ab", "cd", "pq", "xy"} {
		if strings.Contains(s, bad) {
			return false
		}
	}
	vowels, double := 0, false
	for i := 0; i < len(s); i++ {
		if strings.IndexByte("aeiou", s[i]) >= 0 {
			vowels++
		}
		if i > 0 && s[i] == s[i-1] {
			double = true
		}
	}
	return vowels >= 3 && double
}

func niceNew(s string) bool {
	pair, sandwich := false, false
	for i := 0; i+1 < len(s); i++ {
		if strings.Contains(s[i+2:], s[i:i+2]) {
			pair = true
		}
		if i+2 < len(s) && s[i] == s[i+2] {
			sandwich = true
		}
	}
	return pair && sandwich
}
