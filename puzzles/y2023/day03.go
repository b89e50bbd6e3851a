package y2023

import (
	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2023, 3, solveDay03) }

func isSymbol(b byte) bool { return b != '.' && (b < '0' || b > '9') }

// schematicParts sums the part numbers and the gear ratios of a schematic.
// A part number touches a symbol, diagonals included; a gear is a '*'
// touching exactly two part numbers.
func schematicParts(g *grid.Grid[byte]) (parts, ratios int) {
	gears := make(map[geom.Location][]int)
	for r := range g.Height {
		for c := 0; c < g.Width; c++ {
			if b := g.Cells[r][c]; b < '0' || b > '9' {
				continue
			}
			start, n := c, 0
			for ; c < g.Width && g.Cells[r][c] >= '0' && g.Cells[r][c] <= '9'; c++ {
				n = n*10 + int(g.Cells[r][c]-'0')
			}
			touched := make(map[geom.Location]bool)
			for cc := start; cc < c; cc++ {
				for nb := range g.Neighbors(geom.L(r, cc), grid.Conn8) {
					if isSymbol(g.At(nb)) {
						touched[nb] = true
					}
				}
			}
			if len(touched) > 0 {
				parts += n
			}
			for l := range touched {
				if g.At(l) == '*' {
					gears[l] = append(gears[l], n)
				}
			}
		}
	}
	for _, nums := range gears {
		if len(nums) == 2 {
			ratios += nums[0] * nums[1]
		}
	}
	return parts, ratios
}

func solveDay03(input string) (puzzle.Answer, error) {
	g, err := grid.Bytes(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	parts, ratios := schematicParts(g)
	return puzzle.Answer{Part1: parts, Part2: ratios}, nil
}
