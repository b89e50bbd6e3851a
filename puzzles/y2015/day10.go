package y2015

import (
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2015, 10, solveDay10) }

func solveDay10(input string) (puzzle.Answer, error) {
	seq, err := parse.Digits(strings.TrimSpace(input))
	if err != nil {
		return puzzle.Answer{}, err
	}
	var ans puzzle.Answer
	for i := 1; i <= 50; i++ {
		seq = lookAndSay(seq)
		if i == 40 {
			ans.Part1 = len(seq)
		}
	}
	ans.Part2 = len(seq)
	return ans, nil
}

func lookAndSay(seq []int) []int {
	out := make([]int, 0, len(seq)*4/3+2)
	for i := 0; i < len(seq); {
		j := i
		for j < len(seq) && seq[j] == seq[i] {
			j++
		}
		out = append(out, j-i, seq[i])
		i = j
	}
	return out
}
