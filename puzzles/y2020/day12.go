package y2020

import (
	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2020, 12, solveDay12) }

type navInstr struct {
	action byte
	value  int
}

// compass holds unit steps with x east and y south.
var compass = map[byte]geom.Pt{'N': geom.P(0, -1), 'S': geom.P(0, 1), 'E': geom.P(1, 0), 'W': geom.P(-1, 0)}

func parseNav(input string) ([]navInstr, error) {
	var out []navInstr
	for _, line := range parse.Lines(input) {
		if len(line) < 2 {
			return nil, puzzle.Malformed("bad navigation %q", line)
		}
		n, err := parse.Int(line[1:])
		if err != nil {
			return nil, err
		}
		in := navInstr{action: line[0], value: n}
		switch in.action {
		case 'N', 'S', 'E', 'W', 'F':
		case 'L', 'R':
			if n%90 != 0 {
				return nil, puzzle.Malformed("turn of %d degrees", n)
			}
		default:
			return nil, puzzle.Malformed("unknown action %q", in.action)
		}
		out = append(out, in)
	}
	return out, nil
}

func rotate(p geom.Pt, action byte, degrees int) geom.Pt {
	for range degrees / 90 {
		if action == 'R' {
			p = p.RotateRight()
		} else {
			p = p.RotateLeft()
		}
	}
	return p
}

// sail moves the ship. With waypoint set, compass moves shift the waypoint
// instead of the ship, and F moves toward the waypoint.
func sail(instrs []navInstr, heading geom.Pt, waypoint bool) int {
	var ship geom.Pt
	for _, in := range instrs {
		switch in.action {
		case 'F':
			ship = ship.Add(heading.Scale(in.value))
		case 'L', 'R':
			heading = rotate(heading, in.action, in.value)
		default:
			step := compass[in.action].Scale(in.value)
			if waypoint {
				heading = heading.Add(step)
			} else {
				ship = ship.Add(step)
			}
		}
	}
	return ship.Manhattan(geom.Pt{})
}

func solveDay12(input string) (puzzle.Answer, error) {
	instrs, err := parseNav(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{
		Part1: sail(instrs, geom.P(1, 0), false),
		Part2: sail(instrs, geom.P(10, -1), true),
	}, nil
}
