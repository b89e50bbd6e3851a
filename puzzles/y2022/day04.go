package y2022

import (
	"github.com/katalvlaran/advent/intervals"
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2022, 4, solveDay04) }

func solveDay04(input string) (puzzle.Answer, error) {
	contained, overlapping := 0, 0
	for _, line := range parse.Lines(input) {
		n, err := parse.Uints(line)
		if err != nil {
			return puzzle.Answer{}, err
		}
		if len(n) != 4 {
			return puzzle.Answer{}, puzzle.Malformed("bad assignment pair %q", line)
		}
		a, b := intervals.Interval{Lo: n[0], Hi: n[1]}, intervals.Interval{Lo: n[2], Hi: n[3]}
		if a.Covers(b) || b.Covers(a) {
			contained++
		}
		if a.Overlaps(b) {
			overlapping++
		}
	}
	return puzzle.Answer{Part1: contained, Part2: overlapping}, nil
}
