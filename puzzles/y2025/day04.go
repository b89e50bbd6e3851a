package y2025

import (
	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2025, 4, solveDay04) }

const paperRoll = '@'

func accessible(g *grid.Grid[byte], l geom.Location) bool {
	crowd := 0
	for n := range g.Neighbors(l, grid.Conn8) {
		if g.At(n) == paperRoll {
			crowd++
		}
	}
	return crowd < 4
}

// removeRolls repeatedly lifts every accessible roll and returns how many
// went in the first round and in total. g is modified.
func removeRolls(g *grid.Grid[byte]) (first, total int) {
	for round := 0; ; round++ {
		var lift []geom.Location
		for l, b := range g.All() {
			if b == paperRoll && accessible(g, l) {
				lift = append(lift, l)
			}
		}
		if round == 0 {
			first = len(lift)
		}
		if len(lift) == 0 {
			return first, total
		}
		for _, l := range lift {
			g.Set(l, '.')
		}
		total += len(lift)
	}
}

func solveDay04(input string) (puzzle.Answer, error) {
	g, err := grid.Bytes(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	first, total := removeRolls(g)
	return puzzle.Answer{Part1: first, Part2: total}, nil
}
