package y2022

import (
	"github.com/katalvlaran/advent/bfs"
	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2022, 12, solveDay12) }

type heightmap struct {
	g          *grid.Grid[byte]
	start, end geom.Location
}

func parseHeightmap(input string) (*heightmap, error) {
	g, err := grid.Bytes(input)
	if err != nil {
		return nil, err
	}
	hm := &heightmap{g: g}
	var hasStart, hasEnd bool
	for l, b := range g.All() {
		switch {
		case b == 'S':
			hm.start, hasStart = l, true
			g.Set(l, 'a')
		case b == 'E':
			hm.end, hasEnd = l, true
			g.Set(l, 'z')
		case b < 'a' || b > 'z':
			return nil, puzzle.Malformed("bad elevation %q at %v", b, l)
		}
	}
	if !hasStart || !hasEnd {
		return nil, puzzle.Malformed("heightmap needs both S and E")
	}
	return hm, nil
}

// climb returns the fewest steps from any of starts to the summit, moving
// at most one elevation up per step.
func (hm *heightmap) climb(starts []geom.Location) (int, bool) {
	steps, _, ok := bfs.ShortestPath(starts, func(l geom.Location) []geom.Location {
		var next []geom.Location
		for n := range hm.g.Neighbors(l, grid.Conn4) {
			if hm.g.At(n) <= hm.g.At(l)+1 {
				next = append(next, n)
			}
		}
		return next
	}, func(l geom.Location) bool { return l == hm.end })
	return steps, ok
}

func solveDay12(input string) (puzzle.Answer, error) {
	hm, err := parseHeightmap(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	var ans puzzle.Answer
	if steps, ok := hm.climb([]geom.Location{hm.start}); ok {
		ans.Part1 = steps
	}
	var lowlands []geom.Location
	for l, b := range hm.g.All() {
		if b == 'a' {
			lowlands = append(lowlands, l)
		}
	}
	if steps, ok := hm.climb(lowlands); ok {
		ans.Part2 = steps
	}
	if ans.Part2 == nil {
		return puzzle.Answer{}, puzzle.ErrNoSolution
	}
	return ans, nil
}
