package y2021

import (
	"strconv"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2021, 3, solveDay03) }

func onesAt(report []string, bit int) int {
	n := 0
	for _, r := range report {
		if r[bit] == '1' {
			n++
		}
	}
	return n
}

// rating repeatedly filters the report by the most common bit (ties to 1),
// or with co2 by the least common (ties to 0), until one number is left.
func rating(report []string, co2 bool) int64 {
	for bit := 0; len(report) > 1 && bit < len(report[0]); bit++ {
		ones := onesAt(report, bit)
		want := byte('0')
		if (2*ones >= len(report)) != co2 {
			want = '1'
		}
		var keep []string
		for _, r := range report {
			if r[bit] == want {
				keep = append(keep, r)
			}
		}
		report = keep
	}
	v, _ := strconv.ParseInt(report[0], 2, 64)
	return v
}

func solveDay03(input string) (puzzle.Answer, error) {
	report := parse.Lines(input)
	if len(report) == 0 {
		return puzzle.Answer{}, puzzle.Malformed("empty report")
	}
	width := len(report[0])
	for _, r := range report {
		if len(r) != width {
			return puzzle.Answer{}, puzzle.Malformed("%q is not %d bits", r, width)
		}
		if _, err := strconv.ParseUint(r, 2, 64); err != nil {
			return puzzle.Answer{}, puzzle.Malformed("%q is not binary", r)
		}
	}
	var gamma, epsilon int
	for bit := range width {
		gamma, epsilon = gamma<<1, epsilon<<1
		if 2*onesAt(report, bit) > len(report) {
			gamma |= 1
		} else {
			epsilon |= 1
		}
	}
	life := rating(report, false) * rating(report, true)
	return puzzle.Answer{Part1: gamma * epsilon, Part2: int(life)}, nil
}
