package y2023

import (
	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2023, 10, solveDay10) }

var pipeEnds = map[byte][2]geom.Direction{
	'|': {geom.Up, geom.Down},
	'-': {geom.Left, geom.Right},
	'L': {geom.Up, geom.Right},
	'J': {geom.Up, geom.Left},
	'7': {geom.Down, geom.Left},
	'F': {geom.Down, geom.Right},
}

func opensTo(b byte, d geom.Direction) bool {
	ends, ok := pipeEnds[b]
	return ok && (ends[0] == d || ends[1] == d)
}

// pipeLoop returns the tiles of the loop through S in walking order.
func pipeLoop(g *grid.Grid[byte]) ([]geom.Location, error) {
	start, ok := g.Find(func(b byte) bool { return b == 'S' })
	if !ok {
		return nil, puzzle.Malformed("no start tile")
	}
	var exits []geom.Direction
	for _, d := range geom.Directions {
		if b, ok := g.Get(start.Step(d)); ok && opensTo(b, d.Opposite()) {
			exits = append(exits, d)
		}
	}
	if len(exits) != 2 {
		return nil, puzzle.Malformed("start tile connects %d ways, want 2", len(exits))
	}
	loop := []geom.Location{start}
	at, heading := start.Step(exits[0]), exits[0]
	for at != start {
		loop = append(loop, at)
		ends, ok := pipeEnds[g.At(at)]
		if !ok || (ends[0] != heading.Opposite() && ends[1] != heading.Opposite()) {
			return nil, puzzle.Malformed("loop breaks at %v", at)
		}
		if ends[0] == heading.Opposite() {
			heading = ends[1]
		} else {
			heading = ends[0]
		}
		at = at.Step(heading)
		if !g.InBounds(at) {
			return nil, puzzle.Malformed("loop leaves the map")
		}
	}
	return loop, nil
}

// enclosed counts the tiles strictly inside loop: the shoelace formula
// gives its area and Pick's theorem removes the boundary.
func enclosed(loop []geom.Location) int {
	twice := 0
	for i, a := range loop {
		b := loop[(i+1)%len(loop)]
		twice += a.Col*b.Row - b.Col*a.Row
	}
	return geom.Abs(twice)/2 - len(loop)/2 + 1
}

func solveDay10(input string) (puzzle.Answer, error) {
	g, err := grid.Bytes(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	loop, err := pipeLoop(g)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: len(loop) / 2, Part2: enclosed(loop)}, nil
}
