package y2025

import (
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2025, 7, solveDay07) }

// tachyonBeams sends a beam down from S. Each splitter it meets ends the
// beam and starts two more beside it. It returns the splitters hit and the
// number of timelines, one per distinct path a single particle could take.
func tachyonBeams(g *grid.Grid[byte]) (splits, timelines int, err error) {
	start, ok := g.Find(func(b byte) bool { return b == 'S' })
	if !ok {
		return 0, 0, puzzle.Malformed("no beam source")
	}
	paths := make([]int, g.Width)
	paths[start.Col] = 1
	for r := start.Row + 1; r < g.Height; r++ {
		next := make([]int, g.Width)
		for c, n := range paths {
			if n == 0 {
				continue
			}
			if g.Cells[r][c] != '^' {
				next[c] += n
				continue
			}
			splits++
			if c > 0 {
				next[c-1] += n
			}
			if c+1 < g.Width {
				next[c+1] += n
			}
		}
		paths = next
	}
	for _, n := range paths {
		timelines += n
	}
	return splits, timelines, nil
}

func solveDay07(input string) (puzzle.Answer, error) {
	g, err := grid.Bytes(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	splits, timelines, err := tachyonBeams(g)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: splits, Part2: timelines}, nil
}
