package y2025

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/intervals"
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2025, 2, solveDay02) }

// repeatsWith reports whether s is its first n characters repeated.
func repeatsWith(s string, n int) bool {
	if n == 0 || len(s)%n != 0 || len(s) == n {
		return false
	}
	return strings.Repeat(s[:n], len(s)/n) == s
}

func doubled(id int) bool {
	s := strconv.Itoa(id)
	return len(s)%2 == 0 && repeatsWith(s, len(s)/2)
}

func repeated(id int) bool {
	s := strconv.Itoa(id)
	for n := 1; n <= len(s)/2; n++ {
		if repeatsWith(s, n) {
			return true
		}
	}
	return false
}

func parseIDRanges(input string) ([]intervals.Interval, error) {
	var out []intervals.Interval
	for _, part := range strings.Split(strings.TrimSpace(input), ",") {
		n, err := parse.Split(part, "-")
		if err != nil {
			return nil, err
		}
		if len(n) != 2 || n[0] > n[1] {
			return nil, puzzle.Malformed("bad id range %q", part)
		}
		out = append(out, intervals.Interval{Lo: n[0], Hi: n[1]})
	}
	return out, nil
}

func solveDay02(input string) (puzzle.Answer, error) {
	ranges, err := parseIDRanges(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	twice, many := 0, 0
	for _, iv := range intervals.Merge(ranges...).Intervals() {
		for id := iv.Lo; id <= iv.Hi; id++ {
			if doubled(id) {
				twice += id
			}
			if repeated(id) {
				many += id
			}
		}
	}
	return puzzle.Answer{Part1: twice, Part2: many}, nil
}
