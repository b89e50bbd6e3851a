package y2016

import (
	"slices"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2016, 3, solveDay03) }

func triangle(a, b, c int) bool {
	s := []int{a, b, c}
	slices.Sort(s)
	return s[0]+s[1] > s[2]
}

func solveDay03(input string) (puzzle.Answer, error) {
	var rows [][3]int
	for _, line := range parse.Lines(input) {
		n, err := parse.Fields(line)
		if err != nil {
			return puzzle.Answer{}, err
		}
		if len(n) != 3 {
			return puzzle.Answer{}, puzzle.Malformed("want three sides, got %q", line)
		}
		rows = append(rows, [3]int{n[0], n[1], n[2]})
	}

	byRow := 0
	for _, r := range rows {
		if triangle(r[0], r[1], r[2]) {
			byRow++
		}
	}
	ans := puzzle.Answer{Part1: byRow}
	if len(rows)%3 != 0 {
		return ans, nil
	}
	byCol := 0
	for i := 0; i < len(rows); i += 3 {
		for c := range 3 {
			if triangle(rows[i][c], rows[i+1][c], rows[i+2][c]) {
				byCol++
			}
		}
	}
	ans.Part2 = byCol
	return ans, nil
}
