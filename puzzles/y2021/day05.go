package y2021

import (
	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2021, 5, solveDay05) }

type ventLine struct{ from, to geom.Pt }

func (v ventLine) diagonal() bool { return v.from.X != v.to.X && v.from.Y != v.to.Y }

func parseVents(input string) ([]ventLine, error) {
	var out []ventLine
	for _, line := range parse.Lines(input) {
		n, err := parse.Ints(line)
		if err != nil {
			return nil, err
		}
		if len(n) != 4 {
			return nil, puzzle.Malformed("bad vent line %q", line)
		}
		v := ventLine{geom.P(n[0], n[1]), geom.P(n[2], n[3])}
		if d := v.to.Sub(v.from); v.diagonal() && geom.Abs(d.X) != geom.Abs(d.Y) {
			return nil, puzzle.Malformed("%q is not at 45 degrees", line)
		}
		out = append(out, v)
	}
	return out, nil
}

func overlaps(vents []ventLine, diagonals bool) int {
	seen := make(map[geom.Pt]int)
	for _, v := range vents {
		if v.diagonal() && !diagonals {
			continue
		}
		step := v.to.Sub(v.from).Sign()
		for p := v.from; ; p = p.Add(step) {
			seen[p]++
			if p == v.to {
				break
			}
		}
	}
	n := 0
	for _, c := range seen {
		if c > 1 {
			n++
		}
	}
	return n
}

func solveDay05(input string) (puzzle.Answer, error) {
	vents, err := parseVents(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: overlaps(vents, false), Part2: overlaps(vents, true)}, nil
}
