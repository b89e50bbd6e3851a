package y2022

import (
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2022, 2, solveDay02) }

// Shapes are 0 rock, 1 paper, 2 scissors; shape (s+1)%3 beats s.
func roundScore(opponent, mine int) int {
	outcome := (mine - opponent + 4) % 3 // 0 loss, 1 draw, 2 win
	return mine + 1 + outcome*3
}

func solveDay02(input string) (puzzle.Answer, error) {
	asShape, asOutcome := 0, 0
	for _, line := range parse.Lines(input) {
		if len(line) != 3 || line[0] < 'A' || line[0] > 'C' || line[2] < 'X' || line[2] > 'Z' {
			return puzzle.Answer{}, puzzle.Malformed("bad strategy line %q", line)
		}
		opp, col := int(line[0]-'A'), int(line[2]-'X')
		asShape += roundScore(opp, col)
		// col 0 lose, 1 draw, 2 win
		asOutcome += roundScore(opp, (opp+col+2)%3)
	}
	return puzzle.Answer{Part1: asShape, Part2: asOutcome}, nil
}
