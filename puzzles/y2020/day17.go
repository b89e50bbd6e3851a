package y2020

import (
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2020, 17, solveDay17) }

type cube [4]int

// cubeOffsets lists the neighbour offsets in the first dims dimensions.
func cubeOffsets(dims int) []cube {
	var out []cube
	var rec func(i int, c cube)
	rec = func(i int, c cube) {
		if i == dims {
			if c != (cube{}) {
				out = append(out, c)
			}
			return
		}
		for d := -1; d <= 1; d++ {
			c[i] = d
			rec(i+1, c)
		}
	}
	rec(0, cube{})
	return out
}

func conway(active map[cube]bool, dims, cycles int) int {
	offsets := cubeOffsets(dims)
	for range cycles {
		counts := make(map[cube]int)
		for c := range active {
			for _, o := range offsets {
				counts[cube{c[0] + o[0], c[1] + o[1], c[2] + o[2], c[3] + o[3]}]++
			}
		}
		next := make(map[cube]bool)
		for c, n := range counts {
			if n == 3 || (n == 2 && active[c]) {
				next[c] = true
			}
		}
		active = next
	}
	return len(active)
}

func solveDay17(input string) (puzzle.Answer, error) {
	g, err := grid.Bytes(input)
	if err != nil {
		return puzzle.Answer{}, puzzle.Malformed("initial slice: %v", err)
	}
	active := make(map[cube]bool)
	for l, b := range g.All() {
		switch b {
		case '#':
			active[cube{l.Col, l.Row}] = true
		case '.':
		default:
			return puzzle.Answer{}, puzzle.Malformed("unexpected %q at %v", b, l)
		}
	}
	return puzzle.Answer{Part1: conway(active, 3, 6), Part2: conway(active, 4, 6)}, nil
}
