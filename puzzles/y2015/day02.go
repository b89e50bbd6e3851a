package y2015

import (
	"slices"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2015, 2, solveDay02) }

func solveDay02(input string) (puzzle.Answer, error) {
	paper, ribbon := 0, 0
	for _, line := range parse.Lines(input) {
		d, err := parse.Split(line, "x")
		if err != nil {
			return puzzle.Answer{}, err
		}
		if len(d) != 3 {
			return puzzle.Answer{}, puzzle.Malformed("want LxWxH, got %q", line)
		}
		slices.Sort(d)
		l, w, h := d[0], d[1], d[2]
		paper += 2*(l*w+w*h+h*l) + l*w
		ribbon += 2*(l+w) + l*w*h
	}
	return puzzle.Answer{Part1: paper, Part2: ribbon}, nil
}
