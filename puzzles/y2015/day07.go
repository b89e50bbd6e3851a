package y2015

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2015, 7, solveDay07) }

// gate drives one wire from up to two operands (wire names or literals).
type gate struct {
	op   string // "", AND, OR, LSHIFT, RSHIFT, NOT
	args []string
}

type circuit struct {
	gates map[string]gate
	memo  map[string]uint16
}

func parseCircuit(input string) (*circuit, error) {
	c := &circuit{gates: make(map[string]gate)}
	for _, line := range parse.Lines(input) {
		lhs, out, err := parse.Cut(line, " -> ")
		if err != nil {
			return nil, err
		}
		f := strings.Fields(lhs)
		var g gate
		switch len(f) {
		case 1:
			g = gate{args: f}
		case 2:
			if f[0] != "NOT" {
				return nil, puzzle.Malformed("bad gate %q", line)
			}
			g = gate{op: "NOT", args: f[1:]}
		case 3:
			g = gate{op: f[1], args: []string{f[0], f[2]}}
		default:
			return nil, puzzle.Malformed("bad gate %q", line)
		}
		c.gates[strings.TrimSpace(out)] = g
	}
	return c, nil
}

// signal evaluates wire (or literal) name, memoising every wire it touches.
func (c *circuit) signal(name string) (uint16, error) {
	if n, err := strconv.ParseUint(name, 10, 16); err == nil {
		return uint16(n), nil
	}
	if v, ok := c.memo[name]; ok {
		return v, nil
	}
	if c.memo == nil {
		c.memo = make(map[string]uint16)
	}
	g, ok := c.gates[name]
	if !ok {
		return 0, puzzle.Malformed("wire %q is never driven", name)
	}
	vals := make([]uint16, len(g.args))
	for i, a := range g.args {
		v, err := c.signal(a)
		if err != nil {
			return 0, err
		}
		vals[i] = v
	}
	var v uint16
	switch g.op {
	case "":
		v = vals[0]
	case "NOT":
		v = ^vals[0]
	case "AND":
		v = vals[0] & vals[1]
	case "OR":
		v = vals[0] | vals[1]
	case "LSHIFT":
		v = vals[0] << vals[1]
	case "RSHIFT":
		v = vals[0] >> vals[1]
	default:
		return 0, puzzle.Malformed("unknown gate %q", g.op)
	}
	c.memo[name] = v
	return v, nil
}

func solveDay07(input string) (puzzle.Answer, error) {
	c, err := parseCircuit(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	a, err := c.signal("a")
	if err != nil {
		return puzzle.Answer{}, err
	}
	c.gates["b"] = gate{args: []string{strconv.Itoa(int(a))}}
	c.memo = nil
	a2, err := c.signal("a")
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: int(a), Part2: int(a2)}, nil
}
