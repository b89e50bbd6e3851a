package y2020

import (
	"slices"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2020, 9, solveDay09) }

func sumsTo(window []int, target int) bool {
	for i, a := range window {
		for _, b := range window[i+1:] {
			if a != b && a+b == target {
				return true
			}
		}
	}
	return false
}

func firstInvalid(nums []int, preamble int) (int, bool) {
	for i := preamble; i < len(nums); i++ {
		if !sumsTo(nums[i-preamble:i], nums[i]) {
			return nums[i], true
		}
	}
	return 0, false
}

// weakness finds a contiguous run of at least two numbers summing to target
// and adds its smallest and largest.
func weakness(nums []int, target int) (int, bool) {
	lo, sum := 0, 0
	for hi, n := range nums {
		sum += n
		for sum > target && lo < hi {
			sum -= nums[lo]
			lo++
		}
		if sum == target && hi > lo {
			run := nums[lo : hi+1]
			return slices.Min(run) + slices.Max(run), true
		}
	}
	return 0, false
}

func solveXMAS(nums []int, preamble int) (puzzle.Answer, error) {
	bad, ok := firstInvalid(nums, preamble)
	if !ok {
		return puzzle.Answer{}, puzzle.ErrNoSolution
	}
	ans := puzzle.Answer{Part1: bad}
	if w, ok := weakness(nums, bad); ok {
		ans.Part2 = w
	}
	return ans, nil
}

func solveDay09(input string) (puzzle.Answer, error) {
	nums, err := parse.IntLines(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return solveXMAS(nums, 25)
}
