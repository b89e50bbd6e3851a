package y2015

import (
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2015, 25, solveDay25) }

// weatherCode returns the code at (row, col) of the diagonally filled table
// seeded with 20151125.
func weatherCode(row, col int) int {
	diag := row + col - 1
	n := diag*(diag-1)/2 + col - 1 // zero-based position along the fill order
	const mod = 33554393
	code, base := 20151125, 252533
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			code = code * base % mod
		}
		base = base * base % mod
	}
	return code
}

func solveDay25(input string) (puzzle.Answer, error) {
	n, err := parse.Ints(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if len(n) != 2 || n[0] < 1 || n[1] < 1 {
		return puzzle.Answer{}, puzzle.Malformed("want a row and a column")
	}
	return puzzle.Answer{Part1: weatherCode(n[0], n[1])}, nil
}
