package y2015

import (
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2015, 24, solveDay24) }

// balance finds the smallest first group (ties broken by the lowest product)
// such that the rest split into groups-1 more groups of equal weight.
func balance(weights []int, groups int) (int, error) {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total%groups != 0 {
		return 0, puzzle.ErrNoSolution
	}
	target := total / groups

	for size := 1; size <= len(weights); size++ {
		best := -1
		used := make([]bool, len(weights))
		var pick func(start, k, sum, qe int)
		pick = func(start, k, sum, qe int) {
			if k == 0 {
				if sum == target && (best < 0 || qe < best) && splits(weights, used, target, groups-1) {
					best = qe
				}
				return
			}
			for i := start; i < len(weights); i++ {
				if sum+weights[i] > target {
					continue
				}
				used[i] = true
				pick(i+1, k-1, sum+weights[i], qe*weights[i])
				used[i] = false
			}
		}
		pick(0, size, 0, 1)
		if best >= 0 {
			return best, nil
		}
	}
	return 0, puzzle.ErrNoSolution
}

// splits reports whether the unused weights form n groups of target each.
func splits(weights []int, used []bool, target, n int) bool {
	if n <= 1 {
		return true // the remainder already weighs target
	}
	var fill func(i, sum int) bool
	fill = func(i, sum int) bool {
		if sum == target {
			return splits(weights, used, target, n-1)
		}
		for j := i; j < len(weights); j++ {
			if used[j] || sum+weights[j] > target {
				continue
			}
			used[j] = true
			ok := fill(j+1, sum+weights[j])
			used[j] = false
			if ok {
				return true
			}
		}
		return false
	}
	return fill(0, 0)
}

func solveDay24(input string) (puzzle.Answer, error) {
	weights, err := parse.IntLines(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	three, err := balance(weights, 3)
	if err != nil {
		return puzzle.Answer{}, err
	}
	four, err := balance(weights, 4)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: three, Part2: four}, nil
}
