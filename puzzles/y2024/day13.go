package y2024

import (
	"regexp"

	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2024, 13, solveDay13) }

const prizeOffset = 10_000_000_000_000

var clawRx = regexp.MustCompile(`^Button A: X\+(\d+), Y\+(\d+)\s+Button B: X\+(\d+), Y\+(\d+)\s+Prize: X=(\d+), Y=(\d+)$`)

type clawMachine struct {
	a, b, prize geom.Pt
}

func parseClaws(input string) ([]clawMachine, error) {
	var out []clawMachine
	for _, block := range parse.Blocks(input) {
		m, err := parse.Scan(clawRx, block)
		if err != nil {
			return nil, err
		}
		var n [6]int
		for i := range n {
			if n[i], err = parse.Int(m[i]); err != nil {
				return nil, err
			}
		}
		out = append(out, clawMachine{geom.P(n[0], n[1]), geom.P(n[2], n[3]), geom.P(n[4], n[5])})
	}
	return out, nil
}

// tokens solves i·a + j·b = prize by Cramer's rule and returns 3i + j, or
// false when no non-negative integer solution exists. Collinear buttons
// are not handled.
func (c clawMachine) tokens() (int, bool) {
	det := c.a.X*c.b.Y - c.a.Y*c.b.X
	if det == 0 {
		return 0, false
	}
	i := c.prize.X*c.b.Y - c.prize.Y*c.b.X
	j := c.a.X*c.prize.Y - c.a.Y*c.prize.X
	if i%det != 0 || j%det != 0 {
		return 0, false
	}
	i, j = i/det, j/det
	if i < 0 || j < 0 {
		return 0, false
	}
	return 3*i + j, true
}

func solveDay13(input string) (puzzle.Answer, error) {
	claws, err := parseClaws(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	near, far := 0, 0
	for _, c := range claws {
		if t, ok := c.tokens(); ok {
			near += t
		}
		c.prize = c.prize.Add(geom.P(prizeOffset, prizeOffset))
		if t, ok := c.tokens(); ok {
			far += t
		}
	}
	return puzzle.Answer{Part1: near, Part2: far}, nil
}
