package y2022

import (
	"slices"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2022, 1, solveDay01) }

// elfCalories returns each elf's total, largest first.
func elfCalories(input string) ([]int, error) {
	var totals []int
	for _, b := range parse.Blocks(input) {
		items, err := parse.IntLines(b)
		if err != nil {
			return nil, err
		}
		sum := 0
		for _, c := range items {
			sum += c
		}
		totals = append(totals, sum)
	}
	slices.Sort(totals)
	slices.Reverse(totals)
	return totals, nil
}

func solveDay01(input string) (puzzle.Answer, error) {
	totals, err := elfCalories(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if len(totals) < 3 {
		return puzzle.Answer{}, puzzle.Malformed("need at least three elves, got %d", len(totals))
	}
	return puzzle.Answer{Part1: totals[0], Part2: totals[0] + totals[1] + totals[2]}, nil
}
