package y2015

import (
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2015, 17, solveDay17) }

// fillings counts the subsets of sizes summing to target, and how many of
// those use the fewest containers.
func fillings(sizes []int, target int) (all, fewest int) {
	byCount := make([]int, len(sizes)+1)
	var rec func(i, left, used int)
	rec = func(i, left, used int) {
		if left == 0 {
			byCount[used]++
			return
		}
		if left < 0 || i == len(sizes) {
			return
		}
		rec(i+1, left-sizes[i], used+1)
		rec(i+1, left, used)
	}
	rec(0, target, 0)
	for _, n := range byCount {
		all += n
		if fewest == 0 {
			fewest = n
		}
	}
	return all, fewest
}

func solveDay17(input string) (puzzle.Answer, error) {
	sizes, err := parse.IntLines(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	all, fewest := fillings(sizes, 150)
	return puzzle.Answer{Part1: all, Part2: fewest}, nil
}
