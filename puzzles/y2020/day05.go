package y2020

import (
	"slices"
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2020, 5, solveDay05) }

// seatID reads the boarding pass as a 10-bit number: B and R are ones.
func seatID(pass string) (int, error) {
	if len(pass) != 10 {
		return 0, puzzle.Malformed("boarding pass %q is not 10 long", pass)
	}
	id := 0
	for i := 0; i < len(pass); i++ {
		id <<= 1
		switch pass[i] {
		case 'B', 'R':
			id |= 1
		case 'F', 'L':
		default:
			return 0, puzzle.Malformed("bad boarding pass %q", pass)
		}
	}
	return id, nil
}

func solveDay05(input string) (puzzle.Answer, error) {
	var ids []int
	for _, line := range parse.Lines(input) {
		id, err := seatID(strings.TrimSpace(line))
		if err != nil {
			return puzzle.Answer{}, err
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return puzzle.Answer{}, puzzle.Malformed("no boarding passes")
	}
	slices.Sort(ids)
	ans := puzzle.Answer{Part1: ids[len(ids)-1]}
	for i := 1; i < len(ids); i++ {
		if ids[i] == ids[i-1]+2 {
			ans.Part2 = ids[i] - 1
			break
		}
	}
	return ans, nil
}
