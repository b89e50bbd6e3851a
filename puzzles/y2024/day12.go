package y2024

import (
	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2024, 12, solveDay12) }

// fencePrices returns the summed area×perimeter and area×sides over every
// garden region. A region has as many sides as corners, and each cell
// contributes one corner per convex or concave turn around it.
func fencePrices(g *grid.Grid[byte]) (byPerimeter, bySides int) {
	regions := g.Regions(grid.Conn4,
		func(a, b byte) bool { return a == b },
		func(byte) bool { return true })
	for _, region := range regions {
		in := make(map[geom.Location]bool, len(region))
		for _, l := range region {
			in[l] = true
		}
		perimeter, corners := 0, 0
		for _, l := range region {
			for i, d := range geom.Directions {
				if !in[l.Step(d)] {
					perimeter++
				}
				e := geom.Directions[(i+1)%4]
				side1, side2 := in[l.Step(d)], in[l.Step(e)]
				diagonal := in[l.Step(d).Step(e)]
				if (!side1 && !side2) || (side1 && side2 && !diagonal) {
					corners++
				}
			}
		}
		byPerimeter += len(region) * perimeter
		bySides += len(region) * corners
	}
	return byPerimeter, bySides
}

func solveDay12(input string) (puzzle.Answer, error) {
	g, err := grid.Bytes(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	p, s := fencePrices(g)
	return puzzle.Answer{Part1: p, Part2: s}, nil
}
