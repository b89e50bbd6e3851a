package y2024

import (
	"slices"

	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2024, 1, solveDay01) }

func solveDay01(input string) (puzzle.Answer, error) {
	var left, right []int
	for _, line := range parse.Lines(input) {
		n, err := parse.Fields(line)
		if err != nil {
			return puzzle.Answer{}, err
		}
		if len(n) != 2 {
			return puzzle.Answer{}, puzzle.Malformed("want two location IDs, got %q", line)
		}
		left = append(left, n[0])
		right = append(right, n[1])
	}
	slices.Sort(left)
	slices.Sort(right)
	distance := 0
	seen := make(map[int]int, len(right))
	for i := range left {
		distance += geom.Abs(left[i] - right[i])
		seen[right[i]]++
	}
	similarity := 0
	for _, id := range left {
		similarity += id * seen[id]
	}
	return puzzle.Answer{Part1: distance, Part2: similarity}, nil
}
