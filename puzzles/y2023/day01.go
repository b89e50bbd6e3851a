package y2023

import (
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2023, 1, solveDay01) }

var digitWords = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt reports the digit starting at s[i], if any. Spelled digits may
// share letters with their neighbours ("eighthree" holds 8 and 3).
func digitAt(s string, i int, spelled bool) (int, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if spelled {
		for d, w := range digitWords {
			if strings.HasPrefix(s[i:], w) {
				return d + 1, true
			}
		}
	}
	return 0, false
}

func calibration(line string, spelled bool) (int, bool) {
	first, last, found := 0, 0, false
	for i := range len(line) {
		if d, ok := digitAt(line, i, spelled); ok {
			if !found {
				first, found = d, true
			}
			last = d
		}
	}
	return first*10 + last, found
}

func calibrationSum(input string, spelled bool) (int, bool) {
	sum := 0
	for _, line := range parse.Lines(input) {
		v, ok := calibration(line, spelled)
		if !ok {
			return 0, false
		}
		sum += v
	}
	return sum, true
}

func solveDay01(input string) (puzzle.Answer, error) {
	var ans puzzle.Answer
	if v, ok := calibrationSum(input, false); ok {
		ans.Part1 = v
	}
	v, ok := calibrationSum(input, true)
	if !ok {
		return puzzle.Answer{}, puzzle.Malformed("a line has no digit at all")
	}
	ans.Part2 = v
	return ans, nil
}
