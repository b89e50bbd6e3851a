package y2015

import (
	"strconv"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2015, 8, solveDay08) }

func solveDay08(input string) (puzzle.Answer, error) {
	decoded, encoded := 0, 0
	for _, line := range parse.Lines(input) {
		n, err := memoryLen(line)
		if err != nil {
			return puzzle.Answer{}, err
		}
		decoded += len(line) - n
		encoded += len(strconv.Quote(line)) - len(line)
	}
	return puzzle.Answer{Part1: decoded, Part2: encoded}, nil
}

// memoryLen counts the characters a quoted literal with \\, \" and \xHH
// escapes stands for.
func memoryLen(lit string) (int, error) {
	if len(lit) < 2 || lit[0] != '"' || lit[len(lit)-1] != '"' {
		return 0, puzzle.Malformed("not a string literal: %s", lit)
	}
	n := 0
	for i := 1; i < len(lit)-1; i++ {
		if lit[i] == '\\' {
			if i+1 < len(lit)-1 && lit[i+1] == 'x' {
				i += 3
			} else {
				i++
			}
		}
		n++
	}
	return n, nil
}
