package y2023

import (
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2023, 2, solveDay02) }

// cubes counts red, green and blue in that order.
type cubes [3]int

var cubeColor = map[string]int{"red": 0, "green": 1, "blue": 2}

var bagLimit = cubes{12, 13, 14}

// parseGame returns the game id and the fewest cubes of each colour that
// make every reveal possible.
func parseGame(line string) (int, cubes, error) {
	head, reveals, err := parse.Cut(line, ":")
	if err != nil {
		return 0, cubes{}, err
	}
	id, err := parse.Int(strings.TrimPrefix(head, "Game "))
	if err != nil {
		return 0, cubes{}, err
	}
	var need cubes
	for _, grab := range strings.FieldsFunc(reveals, func(r rune) bool { return r == ';' || r == ',' }) {
		f := strings.Fields(grab)
		if len(f) != 2 {
			return 0, cubes{}, puzzle.Malformed("bad reveal %q", grab)
		}
		c, ok := cubeColor[f[1]]
		if !ok {
			return 0, cubes{}, puzzle.Malformed("unknown colour %q", f[1])
		}
		n, err := parse.Int(f[0])
		if err != nil {
			return 0, cubes{}, err
		}
		need[c] = max(need[c], n)
	}
	return id, need, nil
}

func solveDay02(input string) (puzzle.Answer, error) {
	possible, power := 0, 0
	for _, line := range parse.Lines(input) {
		id, need, err := parseGame(strings.TrimSpace(line))
		if err != nil {
			return puzzle.Answer{}, err
		}
		if need[0] <= bagLimit[0] && need[1] <= bagLimit[1] && need[2] <= bagLimit[2] {
			possible += id
		}
		power += need[0] * need[1] * need[2]
	}
	return puzzle.Answer{Part1: possible, Part2: power}, nil
}
