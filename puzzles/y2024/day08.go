package y2024

import (
	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2024, 8, solveDay08) }

// antinodes marks, for every pair of same-frequency antennas, the cells in
// line with them. Without harmonics only the cell one gap beyond each
// antenna counts; with them every in-bounds multiple does, antennas
// included.
func antinodes(g *grid.Grid[byte], harmonics bool) int {
	byFreq := make(map[byte][]geom.Location)
	for l, b := range g.All() {
		if b != '.' {
			byFreq[b] = append(byFreq[b], l)
		}
	}
	marked := make(map[geom.Location]bool)
	for _, ants := range byFreq {
		for i, a := range ants {
			for j, b := range ants {
				if i == j {
					continue
				}
				gap := b.Sub(a)
				if !harmonics {
					if p := b.Add(gap); g.InBounds(p) {
						marked[p] = true
					}
					continue
				}
				for p := b; g.InBounds(p); p = p.Add(gap) {
					marked[p] = true
				}
			}
		}
	}
	return len(marked)
}

func solveDay08(input string) (puzzle.Answer, error) {
	g, err := grid.Bytes(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: antinodes(g, false), Part2: antinodes(g, true)}, nil
}
