package y2025

import (
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2025, 1, solveDay01) }

const (
	dialSize  = 100
	dialStart = 50
)

// zeroPasses counts the clicks that leave a dial at pos pointing at zero
// while turning steps clicks (negative is left).
func zeroPasses(pos, steps int) int {
	if steps >= 0 {
		return (pos + steps) / dialSize
	}
	left := -steps
	if pos == 0 {
		return left / dialSize
	}
	if left < pos {
		return 0
	}
	return (left-pos)/dialSize + 1
}

func solveDay01(input string) (puzzle.Answer, error) {
	pos, landed, passed := dialStart, 0, 0
	for _, line := range parse.Lines(input) {
		if len(line) < 2 || (line[0] != 'L' && line[0] != 'R') {
			return puzzle.Answer{}, puzzle.Malformed("bad rotation %q", line)
		}
		steps, err := parse.Int(line[1:])
		if err != nil {
			return puzzle.Answer{}, err
		}
		if line[0] == 'L' {
			steps = -steps
		}
		passed += zeroPasses(pos, steps)
		pos = ((pos+steps)%dialSize + dialSize) % dialSize
		if pos == 0 {
			landed++
		}
	}
	return puzzle.Answer{Part1: landed, Part2: passed}, nil
}
