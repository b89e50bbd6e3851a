package y2019

import (
	"github.com/katalvlaran/advent/intcode"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2019, 9, solveDay09) }

func boost(prog *intcode.Machine, mode int) (int, error) {
	out, err := prog.Clone().RunWith(mode)
	if err != nil {
		return 0, err
	}
	if len(out) != 1 {
		// more than one value lists the opcodes that malfunctioned
		return 0, puzzle.Malformed("BOOST reported faulty opcodes %v", out)
	}
	return out[0], nil
}

func solveDay09(input string) (puzzle.Answer, error) {
	prog, err := intcode.Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	keycode, err := boost(prog, 1)
	if err != nil {
		return puzzle.Answer{}, err
	}
	coords, err := boost(prog, 2)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: keycode, Part2: coords}, nil
}
