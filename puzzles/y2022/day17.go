package y2022

import (
	"strings"

	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2022, 17, solveDay17) }

// Rock rows bottom first; bit 6 is the leftmost column, and each rock
// appears two columns from the left wall.
var rockShapes = [][]uint8{
	{0b0011110},
	{0b0001000, 0b0011100, 0b0001000},
	{0b0011100, 0b0000100, 0b0000100},
	{0b0010000, 0b0010000, 0b0010000, 0b0010000},
	{0b0011000, 0b0011000},
}

const profileDepth = 32

type chamber struct {
	jets []byte
	jet  int
	rows []uint8
}

func (c *chamber) hits(rock []uint8, y int) bool {
	for i, r := range rock {
		if y+i < len(c.rows) && c.rows[y+i]&r != 0 {
			return true
		}
	}
	return false
}

func (c *chamber) drop(shape []uint8) {
	rock := append([]uint8(nil), shape...)
	moved := make([]uint8, len(rock))
	y := len(c.rows) + 3
	for {
		push := c.jets[c.jet]
		c.jet = (c.jet + 1) % len(c.jets)
		ok := true
		for i, r := range rock {
			if push == '<' {
				ok = ok && r&0b1000000 == 0
				moved[i] = r << 1
			} else {
				ok = ok && r&1 == 0
				moved[i] = r >> 1
			}
		}
		if ok && !c.hits(moved, y) {
			rock, moved = moved, rock
		}
		if y == 0 || c.hits(rock, y-1) {
			break
		}
		y--
	}
	for i, r := range rock {
		for y+i >= len(c.rows) {
			c.rows = append(c.rows, 0)
		}
		c.rows[y+i] |= r
	}
}

type chamberState struct {
	rock, jet int
	profile   [profileDepth]uint8
}

// towerHeight drops n rocks and returns the tower height. Once the rock
// kind, jet position and top of the tower repeat, whole cycles are
// skipped arithmetically.
func towerHeight(jets string, n int) int {
	c := &chamber{jets: []byte(jets)}
	type mark struct{ rocks, height int }
	seen := make(map[chamberState]mark)
	skipped, extra := false, 0
	for i := 0; i < n; i++ {
		c.drop(rockShapes[i%len(rockShapes)])
		if skipped || len(c.rows) < profileDepth {
			continue
		}
		st := chamberState{rock: i % len(rockShapes), jet: c.jet}
		copy(st.profile[:], c.rows[len(c.rows)-profileDepth:])
		prev, ok := seen[st]
		if !ok {
			seen[st] = mark{i, len(c.rows)}
			continue
		}
		period := i - prev.rocks
		cycles := (n - 1 - i) / period
		extra = cycles * (len(c.rows) - prev.height)
		i += cycles * period
		skipped = true
	}
	return len(c.rows) + extra
}

func solveDay17(input string) (puzzle.Answer, error) {
	jets := strings.TrimSpace(input)
	if jets == "" || strings.Trim(jets, "<>") != "" {
		return puzzle.Answer{}, puzzle.Malformed("jet pattern must be < and > only")
	}
	return puzzle.Answer{
		Part1: towerHeight(jets, 2022),
		Part2: towerHeight(jets, 1_000_000_000_000),
	}, nil
}
