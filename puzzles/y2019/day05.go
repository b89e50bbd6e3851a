package y2019

import (
	"github.com/katalvlaran/advent/intcode"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2019, 5, solveDay05) }

// diagnostic runs the TEST program for system id and returns its final
// output. Every earlier output is a self-test and must be zero.
func diagnostic(prog *intcode.Machine, id int) (int, error) {
	out, err := prog.Clone().RunWith(id)
	if err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, puzzle.ErrNoSolution
	}
	for i, v := range out[:len(out)-1] {
		if v != 0 {
			return 0, puzzle.Malformed("self-test %d failed with %d", i, v)
		}
	}
	return out[len(out)-1], nil
}

func solveDay05(input string) (puzzle.Answer, error) {
	prog, err := intcode.Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	ac, err := diagnostic(prog, 1)
	if err != nil {
		return puzzle.Answer{}, err
	}
	thermal, err := diagnostic(prog, 5)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: ac, Part2: thermal}, nil
}
