package y2019

import (
	"strings"

	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2019, 3, solveDay03) }

// traceWire maps every cell the wire covers to the steps taken to first
// reach it.
func traceWire(path string) (map[geom.Location]int, error) {
	steps := make(map[geom.Location]int)
	var pos geom.Location
	n := 0
	for _, seg := range strings.Split(strings.TrimSpace(path), ",") {
		if len(seg) < 2 {
			return nil, puzzle.Malformed("bad wire segment %q", seg)
		}
		d, err := geom.ParseDirection(rune(seg[0]))
		if err != nil {
			return nil, puzzle.Malformed("wire segment %q: %v", seg, err)
		}
		length, err := parse.Int(seg[1:])
		if err != nil {
			return nil, err
		}
		for range length {
			pos = pos.Step(d)
			n++
			if _, ok := steps[pos]; !ok {
				steps[pos] = n
			}
		}
	}
	return steps, nil
}

func solveDay03(input string) (puzzle.Answer, error) {
	lines := parse.Lines(input)
	if len(lines) != 2 {
		return puzzle.Answer{}, puzzle.Malformed("want two wires, got %d", len(lines))
	}
	a, err := traceWire(lines[0])
	if err != nil {
		return puzzle.Answer{}, err
	}
	b, err := traceWire(lines[1])
	if err != nil {
		return puzzle.Answer{}, err
	}
	var origin geom.Location
	closest, fewest := -1, -1
	for loc, sa := range a {
		sb, ok := b[loc]
		if !ok {
			continue
		}
		if d := loc.Manhattan(origin); closest < 0 || d < closest {
			closest = d
		}
		if s := sa + sb; fewest < 0 || s < fewest {
			fewest = s
		}
	}
	if closest < 0 {
		return puzzle.Answer{}, puzzle.ErrNoSolution
	}
	return puzzle.Answer{Part1: closest, Part2: fewest}, nil
}
