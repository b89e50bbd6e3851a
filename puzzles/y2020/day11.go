package y2020

import (
	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2020, 11, solveDay11) }

var eightWays = func() (vs [8]geom.Vector) {
	var origin geom.Location
	for i, n := range origin.Neighbors8() {
		vs[i] = n.Sub(origin)
	}
	return vs
}()

// seatLinks lists, for every seat, the seats it watches: the adjacent ones,
// or the first seat visible along each of the eight directions.
func seatLinks(g *grid.Grid[byte], visible bool) map[geom.Location][]geom.Location {
	links := make(map[geom.Location][]geom.Location)
	for l, b := range g.All() {
		if b == '.' {
			continue
		}
		for _, v := range eightWays {
			for n := l.Add(v); g.InBounds(n); n = n.Add(v) {
				if g.At(n) != '.' {
					links[l] = append(links[l], n)
					break
				}
				if !visible {
					break
				}
			}
		}
	}
	return links
}

// settle applies the seating rules until nothing changes and counts the
// occupied seats.
func settle(g *grid.Grid[byte], visible bool, tolerance int) int {
	links := seatLinks(g, visible)
	cur := g.Clone()
	for {
		next := cur.Clone()
		changed := false
		for l, seats := range links {
			busy := 0
			for _, s := range seats {
				if cur.At(s) == '#' {
					busy++
				}
			}
			switch {
			case cur.At(l) == 'L' && busy == 0:
				next.Set(l, '#')
				changed = true
			case cur.At(l) == '#' && busy >= tolerance:
				next.Set(l, 'L')
				changed = true
			}
		}
		if !changed {
			return cur.Count(func(b byte) bool { return b == '#' })
		}
		cur = next
	}
}

func solveDay11(input string) (puzzle.Answer, error) {
	g, err := grid.Bytes(input)
	if err != nil {
		return puzzle.Answer{}, puzzle.Malformed("seat layout: %v", err)
	}
	for l, b := range g.All() {
		if b != '.' && b != 'L' && b != '#' {
			return puzzle.Answer{}, puzzle.Malformed("unexpected %q at %v", b, l)
		}
	}
	return puzzle.Answer{Part1: settle(g, false, 4), Part2: settle(g, true, 5)}, nil
}
