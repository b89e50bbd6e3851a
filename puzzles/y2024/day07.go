package y2024

import (
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2024, 7, solveDay07) }

type calibrationEq struct {
	total  int
	values []int
}

// solvable works backwards from the total: the last value must have been
// added, multiplied in or, with concat, appended as digits.
func solvable(total int, values []int, concat bool) bool {
	last := values[len(values)-1]
	if len(values) == 1 {
		return total == last
	}
	rest := values[:len(values)-1]
	if total > last && solvable(total-last, rest, concat) {
		return true
	}
	if last != 0 && total%last == 0 && solvable(total/last, rest, concat) {
		return true
	}
	if concat {
		pow := 10
		for pow <= last {
			pow *= 10
		}
		if total > last && total%pow == last && solvable(total/pow, rest, concat) {
			return true
		}
	}
	return false
}

func solveDay07(input string) (puzzle.Answer, error) {
	var eqs []calibrationEq
	for _, line := range parse.Lines(input) {
		head, tail, err := parse.Cut(line, ":")
		if err != nil {
			return puzzle.Answer{}, err
		}
		total, err := parse.Int(head)
		if err != nil {
			return puzzle.Answer{}, err
		}
		values, err := parse.Fields(tail)
		if err != nil {
			return puzzle.Answer{}, err
		}
		if len(values) == 0 {
			return puzzle.Answer{}, puzzle.Malformed("no values in %q", line)
		}
		eqs = append(eqs, calibrationEq{total, values})
	}
	two, three := 0, 0
	for _, eq := range eqs {
		if solvable(eq.total, eq.values, false) {
			two += eq.total
		}
		if solvable(eq.total, eq.values, true) {
			three += eq.total
		}
	}
	return puzzle.Answer{Part1: two, Part2: three}, nil
}
