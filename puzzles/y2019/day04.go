package y2019

import (
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2019, 4, solveDay04) }

// passwordRuns returns the digit run lengths of n, or nil when the digits
// ever decrease.
func passwordRuns(n int) []int {
	var digits [6]int
	for i := 5; i >= 0; i-- {
		digits[i] = n % 10
		n /= 10
	}
	runs := []int{1}
	for i := 1; i < 6; i++ {
		switch {
		case digits[i] < digits[i-1]:
			return nil
		case digits[i] == digits[i-1]:
			runs[len(runs)-1]++
		default:
			runs = append(runs, 1)
		}
	}
	return runs
}

func validPassword(n int, exactPair bool) bool {
	for _, r := range passwordRuns(n) {
		if r == 2 || (!exactPair && r > 2) {
			return true
		}
	}
	return false
}

func solveDay04(input string) (puzzle.Answer, error) {
	bounds, err := parse.Split(input, "-")
	if err != nil {
		return puzzle.Answer{}, err
	}
	if len(bounds) != 2 || bounds[0] > bounds[1] {
		return puzzle.Answer{}, puzzle.Malformed("bad range %q", input)
	}
	loose, strict := 0, 0
	for n := max(bounds[0], 100000); n <= min(bounds[1], 999999); n++ {
		if validPassword(n, false) {
			loose++
		}
		if validPassword(n, true) {
			strict++
		}
	}
	return puzzle.Answer{Part1: loose, Part2: strict}, nil
}
