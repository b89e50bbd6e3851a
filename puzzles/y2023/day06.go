package y2023

import (
	"math"
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2023, 6, solveDay06) }

// waysToWin counts the button hold times h in [0, time] with
// h·(time−h) > record. The float roots of the quadratic are nudged onto the
// exact integer bounds.
func waysToWin(time, record int) int {
	beats := func(h int) bool { return h*(time-h) > record }
	disc := float64(time*time - 4*record)
	if disc < 0 {
		return 0
	}
	root := math.Sqrt(disc)
	lo := int(math.Floor((float64(time) - root) / 2))
	hi := int(math.Ceil((float64(time) + root) / 2))
	lo, hi = max(lo, 0), min(hi, time)
	for lo <= hi && !beats(lo) {
		lo++
	}
	for hi >= lo && !beats(hi) {
		hi--
	}
	return hi - lo + 1
}

func solveDay06(input string) (puzzle.Answer, error) {
	lines := parse.Lines(input)
	if len(lines) != 2 {
		return puzzle.Answer{}, puzzle.Malformed("want time and distance lines")
	}
	var rows [2][]int
	var joined [2]int
	for i, line := range lines {
		_, nums, err := parse.Cut(line, ":")
		if err != nil {
			return puzzle.Answer{}, err
		}
		if rows[i], err = parse.Fields(nums); err != nil {
			return puzzle.Answer{}, err
		}
		if joined[i], err = parse.Int(strings.Join(strings.Fields(nums), "")); err != nil {
			return puzzle.Answer{}, err
		}
	}
	if len(rows[0]) != len(rows[1]) {
		return puzzle.Answer{}, puzzle.Malformed("%d times but %d distances", len(rows[0]), len(rows[1]))
	}
	product := 1
	for i, t := range rows[0] {
		product *= waysToWin(t, rows[1][i])
	}
	return puzzle.Answer{Part1: product, Part2: waysToWin(joined[0], joined[1])}, nil
}
