package y2025

import (
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2025, 3, solveDay03) }

// maxJoltage picks n batteries in bank order to form the largest number:
// each digit is the earliest maximum that still leaves room for the rest.
func maxJoltage(bank []int, n int) int {
	value, from := 0, 0
	for left := n; left > 0; left-- {
		best := from
		for i := from; i <= len(bank)-left; i++ {
			if bank[i] > bank[best] {
				best = i
			}
		}
		value = value*10 + bank[best]
		from = best + 1
	}
	return value
}

func solveDay03(input string) (puzzle.Answer, error) {
	two, twelve := 0, 0
	for _, line := range parse.Lines(input) {
		bank, err := parse.Digits(line)
		if err != nil {
			return puzzle.Answer{}, err
		}
		if len(bank) < 12 {
			return puzzle.Answer{}, puzzle.Malformed("bank %q has fewer than 12 batteries", line)
		}
		two += maxJoltage(bank, 2)
		twelve += maxJoltage(bank, 12)
	}
	return puzzle.Answer{Part1: two, Part2: twelve}, nil
}
