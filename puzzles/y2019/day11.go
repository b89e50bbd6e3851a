package y2019

import (
	"strings"

	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/intcode"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2019, 11, solveDay11) }

// painterBrain is given the current panel colour and answers with the colour
// to paint and the turn to take (0 left, 1 right). done reports a halt.
type painterBrain func(color int) (paint, turn int, done bool, err error)

func intcodeBrain(prog *intcode.Machine) painterBrain {
	m := prog.Clone()
	return func(color int) (int, int, bool, error) {
		if m.State() == intcode.Halted {
			return 0, 0, true, nil
		}
		out, err := m.RunWith(color)
		if err != nil {
			return 0, 0, false, err
		}
		if len(out) == 0 && m.State() == intcode.Halted {
			return 0, 0, true, nil
		}
		if len(out) != 2 {
			return 0, 0, false, puzzle.Malformed("robot emitted %d values, want 2", len(out))
		}
		return out[0], out[1], false, nil
	}
}

// paintHull drives the robot and returns the panel colours it left behind.
func paintHull(brain painterBrain, start int) (map[geom.Location]int, error) {
	var pos geom.Location
	facing := geom.Up
	hull := map[geom.Location]int{pos: start}
	painted := map[geom.Location]bool{}
	for {
		paint, turn, done, err := brain(hull[pos])
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		hull[pos] = paint
		painted[pos] = true
		facing = facing.Turn(turn == 1)
		pos = pos.Step(facing)
	}
	for loc := range hull {
		if !painted[loc] {
			delete(hull, loc)
		}
	}
	return hull, nil
}

func renderHull(hull map[geom.Location]int) string {
	first := true
	var lo, hi geom.Location
	for loc, c := range hull {
		if c != 1 {
			continue
		}
		if first {
			lo, hi, first = loc, loc, false
		}
		lo = geom.L(min(lo.Row, loc.Row), min(lo.Col, loc.Col))
		hi = geom.L(max(hi.Row, loc.Row), max(hi.Col, loc.Col))
	}
	var sb strings.Builder
	for r := lo.Row; r <= hi.Row; r++ {
		if r > lo.Row {
			sb.WriteByte('\n')
		}
		for c := lo.Col; c <= hi.Col; c++ {
			if hull[geom.L(r, c)] == 1 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

func solveDay11(input string) (puzzle.Answer, error) {
	prog, err := intcode.Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	black, err := paintHull(intcodeBrain(prog), 0)
	if err != nil {
		return puzzle.Answer{}, err
	}
	white, err := paintHull(intcodeBrain(prog), 1)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: len(black), Part2: renderHull(white)}, nil
}
