package y2024

import (
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2024, 2, solveDay02) }

// reportSafe holds when levels move strictly one way in steps of 1 to 3.
// skip names a level to leave out, or -1 for none.
func reportSafe(levels []int, skip int) bool {
	prev, dir, seen := 0, 0, 0
	for i, v := range levels {
		if i == skip {
			continue
		}
		if seen > 0 {
			d := v - prev
			switch {
			case d >= 1 && d <= 3 && dir >= 0:
				dir = 1
			case d <= -1 && d >= -3 && dir <= 0:
				dir = -1
			default:
				return false
			}
		}
		prev = v
		seen++
	}
	return true
}

func dampenedSafe(levels []int) bool {
	for skip := -1; skip < len(levels); skip++ {
		if reportSafe(levels, skip) {
			return true
		}
	}
	return false
}

func solveDay02(input string) (puzzle.Answer, error) {
	safe, dampened := 0, 0
	for _, line := range parse.Lines(input) {
		levels, err := parse.Fields(line)
		if err != nil {
			return puzzle.Answer{}, err
		}
		if reportSafe(levels, -1) {
			safe++
		}
		if dampenedSafe(levels) {
			dampened++
		}
	}
	return puzzle.Answer{Part1: safe, Part2: dampened}, nil
}
