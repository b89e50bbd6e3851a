package y2024

import (
	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2024, 6, solveDay06) }

type patrolLab struct {
	g     *grid.Grid[byte]
	start geom.Location
	// stamp marks (cell, heading) pairs seen during walk number gen.
	stamp []int
	gen   int
}

func parseLab(input string) (*patrolLab, error) {
	g, err := grid.Bytes(input)
	if err != nil {
		return nil, err
	}
	start, ok := g.Find(func(b byte) bool { return b == '^' })
	if !ok {
		return nil, puzzle.Malformed("no guard")
	}
	g.Set(start, '.')
	return &patrolLab{g: g, start: start, stamp: make([]int, g.Width*g.Height*4)}, nil
}

// patrol walks the guard until it leaves the map, calling visit on every
// new cell. It reports false if the guard ends up in a loop.
func (p *patrolLab) patrol(visit func(geom.Location)) bool {
	p.gen++
	at, heading := p.start, geom.Up
	for {
		key := (at.Row*p.g.Width+at.Col)*4 + int(heading)
		if p.stamp[key] == p.gen {
			return false
		}
		p.stamp[key] = p.gen
		if visit != nil {
			visit(at)
		}
		ahead := at.Step(heading)
		b, ok := p.g.Get(ahead)
		switch {
		case !ok:
			return true
		case b == '#':
			heading = heading.Turn(true)
		default:
			at = ahead
		}
	}
}

func solveDay06(input string) (puzzle.Answer, error) {
	p, err := parseLab(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	visited := make(map[geom.Location]bool)
	var route []geom.Location
	if !p.patrol(func(l geom.Location) {
		if !visited[l] {
			visited[l] = true
			route = append(route, l)
		}
	}) {
		return puzzle.Answer{}, puzzle.ErrNoSolution
	}
	loops := 0
	for _, l := range route {
		if l == p.start {
			continue
		}
		p.g.Set(l, '#')
		if !p.patrol(nil) {
			loops++
		}
		p.g.Set(l, '.')
	}
	return puzzle.Answer{Part1: len(visited), Part2: loops}, nil
}
