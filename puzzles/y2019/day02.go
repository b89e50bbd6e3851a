package y2019

import (
	"github.com/katalvlaran/advent/intcode"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2019, 2, solveDay02) }

const gravityTarget = 19690720

// runNounVerb patches addresses 1 and 2 and returns address 0 after halting.
func runNounVerb(prog *intcode.Machine, noun, verb int) (int, error) {
	m := prog.Clone()
	if err := m.Write(1, noun); err != nil {
		return 0, err
	}
	if err := m.Write(2, verb); err != nil {
		return 0, err
	}
	if _, err := m.Run(); err != nil {
		return 0, err
	}
	return m.Read(0), nil
}

func solveDay02(input string) (puzzle.Answer, error) {
	prog, err := intcode.Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	alarm, err := runNounVerb(prog, 12, 2)
	if err != nil {
		return puzzle.Answer{}, err
	}
	for noun := range 100 {
		for verb := range 100 {
			v, err := runNounVerb(prog, noun, verb)
			if err != nil {
				// some pairs index outside the program; they cannot be the answer
				continue
			}
			if v == gravityTarget {
				return puzzle.Answer{Part1: alarm, Part2: 100*noun + verb}, nil
			}
		}
	}
	return puzzle.Answer{Part1: alarm}, nil
}
