package y2022

import (
	"strings"

	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2022, 14, solveDay14) }

var sandSource = geom.P(500, 0)

// cave holds blocked cells; y grows downward.
type cave struct {
	blocked map[geom.Pt]bool
	lowest  int
}

func parseCave(input string) (*cave, error) {
	c := &cave{blocked: make(map[geom.Pt]bool)}
	for _, line := range parse.Lines(input) {
		var path []geom.Pt
		for _, corner := range strings.Split(line, " -> ") {
			n, err := parse.Split(corner, ",")
			if err != nil {
				return nil, err
			}
			if len(n) != 2 {
				return nil, puzzle.Malformed("bad rock corner %q", corner)
			}
			path = append(path, geom.P(n[0], n[1]))
		}
		for i := 1; i < len(path); i++ {
			a, b := path[i-1], path[i]
			if a.X != b.X && a.Y != b.Y {
				return nil, puzzle.Malformed("diagonal rock in %q", line)
			}
			step := b.Sub(a).Sign()
			for p := a; ; p = p.Add(step) {
				c.blocked[p] = true
				c.lowest = max(c.lowest, p.Y)
				if p == b {
					break
				}
			}
		}
	}
	return c, nil
}

// pour drops sand until a grain falls past the lowest rock or, with a floor
// two below it, until the source is buried. It returns the grains at rest.
// Falling grains retrace the previous grain's path so each drop starts
// just above where the last one settled.
func (c *cave) pour(floor bool) int {
	filled := make(map[geom.Pt]bool, len(c.blocked))
	for p := range c.blocked {
		filled[p] = true
	}
	moves := []geom.Pt{geom.P(0, 1), geom.P(-1, 1), geom.P(1, 1)}
	path := []geom.Pt{sandSource}
	rested := 0
	for len(path) > 0 {
		p := path[len(path)-1]
	fall:
		for {
			if p.Y == c.lowest+1 {
				if !floor {
					return rested
				}
				break
			}
			for _, m := range moves {
				if n := p.Add(m); !filled[n] {
					path = append(path, n)
					p = n
					continue fall
				}
			}
			break
		}
		filled[p] = true
		rested++
		path = path[:len(path)-1]
	}
	return rested
}

func solveDay14(input string) (puzzle.Answer, error) {
	c, err := parseCave(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: c.pour(false), Part2: c.pour(true)}, nil
}
