package y2021

import (
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2021, 2, solveDay02) }

func solveDay02(input string) (puzzle.Answer, error) {
	// depth doubles as aim for the second interpretation
	var pos, depth, aimDepth int
	for _, line := range parse.Lines(input) {
		cmd, arg, err := parse.Cut(strings.TrimSpace(line), " ")
		if err != nil {
			return puzzle.Answer{}, err
		}
		n, err := parse.Int(arg)
		if err != nil {
			return puzzle.Answer{}, err
		}
		switch cmd {
		case "forward":
			pos += n
			aimDepth += depth * n
		case "down":
			depth += n
		case "up":
			depth -= n
		default:
			return puzzle.Answer{}, puzzle.Malformed("unknown command %q", cmd)
		}
	}
	return puzzle.Answer{Part1: pos * depth, Part2: pos * aimDepth}, nil
}
