package y2020

import (
	"slices"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2020, 1, solveDay01) }

// pairSum finds two entries of the sorted slice summing to target.
func pairSum(sorted []int, target int) (int, int, bool) {
	for i, j := 0, len(sorted)-1; i < j; {
		switch s := sorted[i] + sorted[j]; {
		case s == target:
			return sorted[i], sorted[j], true
		case s < target:
			i++
		default:
			j--
		}
	}
	return 0, 0, false
}

func solveDay01(input string) (puzzle.Answer, error) {
	entries, err := parse.IntLines(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	slices.Sort(entries)
	a, b, ok := pairSum(entries, 2020)
	if !ok {
		return puzzle.Answer{}, puzzle.ErrNoSolution
	}
	ans := puzzle.Answer{Part1: a * b}
	for i, x := range entries {
		if y, z, ok := pairSum(entries[i+1:], 2020-x); ok {
			ans.Part2 = x * y * z
			break
		}
	}
	return ans, nil
}
