package y2015

import (
	"strings"

	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2015, 3, solveDay03) }

func solveDay03(input string) (puzzle.Answer, error) {
	steps, err := parseArrows(strings.TrimSpace(input))
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: deliver(steps, 1), Part2: deliver(steps, 2)}, nil
}

func parseArrows(s string) ([]geom.Direction, error) {
	out := make([]geom.Direction, 0, len(s))
	for _, r := range s {
		d, err := geom.ParseDirection(r)
		if err != nil {
			return nil, puzzle.Malformed("%v", err)
		}
		out = append(out, d)
	}
	return out, nil
}

// deliver returns the number of houses visited when santas take turns
// following steps.
func deliver(steps []geom.Direction, santas int) int {
	pos := make([]geom.Location, santas)
	seen := map[geom.Location]bool{{}: true}
	for i, d := range steps {
		s := i % santas
		pos[s] = pos[s].Step(d)
		seen[pos[s]] = true
	}
	return len(seen)
}
