package y2021

import (
	"slices"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2021, 10, solveDay10) }

var (
	closerOf = map[rune]rune{'(': ')', '[': ']', '{': '}', '<': '>'}

	corruptScore    = map[rune]int{')': 3, ']': 57, '}': 1197, '>': 25137}
	completionScore = map[rune]int{')': 1, ']': 2, '}': 3, '>': 4}
)

// checkChunks returns the corruption score of line, or zero and the
// completion score when the line is merely incomplete.
func checkChunks(line string) (corrupt, complete int, err error) {
	var stack []rune
	for _, r := range line {
		if c, ok := closerOf[r]; ok {
			stack = append(stack, c)
			continue
		}
		if _, ok := corruptScore[r]; !ok {
			return 0, 0, puzzle.Malformed("bad chunk character %q", r)
		}
		if len(stack) == 0 || stack[len(stack)-1] != r {
			return corruptScore[r], 0, nil
		}
		stack = stack[:len(stack)-1]
	}
	for i := len(stack) - 1; i >= 0; i-- {
		complete = complete*5 + completionScore[stack[i]]
	}
	return 0, complete, nil
}

func solveDay10(input string) (puzzle.Answer, error) {
	syntax := 0
	var completions []int
	for _, line := range parse.Lines(input) {
		corrupt, complete, err := checkChunks(line)
		if err != nil {
			return puzzle.Answer{}, err
		}
		syntax += corrupt
		if complete > 0 {
			completions = append(completions, complete)
		}
	}
	ans := puzzle.Answer{Part1: syntax}
	if len(completions) > 0 {
		slices.Sort(completions)
		ans.Part2 = completions[len(completions)/2]
	}
	return ans, nil
}
