package y2019

import (
	"github.com/katalvlaran/advent/intcode"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2019, 7, solveDay07) }

// permutations yields every ordering of xs, reusing one backing slice.
func permutations(xs []int, yield func([]int) error) error {
	var rec func(k int) error
	rec = func(k int) error {
		if k == len(xs) {
			return yield(xs)
		}
		for i := k; i < len(xs); i++ {
			xs[k], xs[i] = xs[i], xs[k]
			if err := rec(k + 1); err != nil {
				return err
			}
			xs[k], xs[i] = xs[i], xs[k]
		}
		return nil
	}
	return rec(0)
}

// amplify wires one amplifier per phase in a ring and feeds 0 to the first.
// Signals circulate until the last amplifier halts; with phases 0-4 that is
// after a single pass.
func amplify(prog *intcode.Machine, phases []int) (int, error) {
	amps := make([]*intcode.Machine, len(phases))
	for i, p := range phases {
		amps[i] = prog.Clone()
		amps[i].Input(p)
	}
	signal := 0
	for {
		for i, amp := range amps {
			out, err := amp.RunWith(signal)
			if err != nil {
				return 0, err
			}
			if len(out) == 0 {
				return 0, puzzle.Malformed("amplifier %d produced no signal", i)
			}
			signal = out[len(out)-1]
		}
		if amps[len(amps)-1].State() == intcode.Halted {
			return signal, nil
		}
	}
}

func bestSignal(prog *intcode.Machine, phases []int) (int, error) {
	best := 0
	err := permutations(phases, func(p []int) error {
		s, err := amplify(prog, p)
		if err != nil {
			return err
		}
		best = max(best, s)
		return nil
	})
	return best, err
}

func solveDay07(input string) (puzzle.Answer, error) {
	prog, err := intcode.Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	serial, err := bestSignal(prog, []int{0, 1, 2, 3, 4})
	if err != nil {
		return puzzle.Answer{}, err
	}
	loop, err := bestSignal(prog, []int{5, 6, 7, 8, 9})
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: serial, Part2: loop}, nil
}
