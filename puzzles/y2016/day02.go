package y2016

import (
	"strings"

	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2016, 2, solveDay02) }

var (
	squarePad  = []string{"123", "456", "789"}
	diamondPad = []string{"  1  ", " 234 ", "56789", " ABC ", "  D  "}
)

// keypad is a button layout where spaces mark missing buttons.
type keypad struct {
	g *grid.Grid[byte]
}

func newKeypad(rows []string) keypad {
	cells := make([][]byte, len(rows))
	for i, r := range rows {
		cells[i] = []byte(r)
	}
	g, err := grid.FromRows(cells)
	if err != nil {
		panic(err)
	}
	return keypad{g: g}
}

func (k keypad) code(lines []string) (string, error) {
	pos, _ := k.g.Find(func(b byte) bool { return b == '5' })
	var sb strings.Builder
	for _, line := range lines {
		for _, r := range strings.TrimSpace(line) {
			d, err := geom.ParseDirection(r)
			if err != nil {
				return "", puzzle.Malformed("keypad move: %v", err)
			}
			if b, ok := k.g.Get(pos.Step(d)); ok && b != ' ' {
				pos = pos.Step(d)
			}
		}
		sb.WriteByte(k.g.At(pos))
	}
	return sb.String(), nil
}

func solveDay02(input string) (puzzle.Answer, error) {
	lines := parse.Lines(input)
	if len(lines) == 0 {
		return puzzle.Answer{}, puzzle.Malformed("no instructions")
	}
	square, err := newKeypad(squarePad).code(lines)
	if err != nil {
		return puzzle.Answer{}, err
	}
	diamond, err := newKeypad(diamondPad).code(lines)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: square, Part2: diamond}, nil
}
