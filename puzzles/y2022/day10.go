package y2022

import (
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2022, 10, solveDay10) }

const crtWidth = 40

// registerTrace runs the program and returns X during each cycle;
// trace[0] is the value during cycle 1.
func registerTrace(input string) ([]int, error) {
	x := 1
	var trace []int
	for _, line := range parse.Lines(input) {
		switch f := strings.Fields(line); {
		case len(f) == 1 && f[0] == "noop":
			trace = append(trace, x)
		case len(f) == 2 && f[0] == "addx":
			v, err := parse.Int(f[1])
			if err != nil {
				return nil, err
			}
			trace = append(trace, x, x)
			x += v
		default:
			return nil, puzzle.Malformed("bad instruction %q", line)
		}
	}
	return trace, nil
}

func signalStrength(trace []int) int {
	sum := 0
	for cycle := 20; cycle <= len(trace) && cycle <= 220; cycle += 40 {
		sum += cycle * trace[cycle-1]
	}
	return sum
}

// renderCRT draws one pixel per cycle, lit when the three-wide sprite
// centred on X covers the beam.
func renderCRT(trace []int) string {
	var b strings.Builder
	for i, x := range trace {
		col := i % crtWidth
		if i > 0 && col == 0 {
			b.WriteByte('\n')
		}
		if col >= x-1 && col <= x+1 {
			b.WriteByte('#')
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

func solveDay10(input string) (puzzle.Answer, error) {
	trace, err := registerTrace(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: signalStrength(trace), Part2: renderCRT(trace)}, nil
}
