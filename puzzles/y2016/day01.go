package y2016

import (
	"strings"

	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2016, 1, solveDay01) }

type turnStep struct {
	right bool
	n     int
}

func parseTurns(input string) ([]turnStep, error) {
	var steps []turnStep
	for _, tok := range strings.Split(strings.TrimSpace(input), ",") {
		tok = strings.TrimSpace(tok)
		if len(tok) < 2 || (tok[0] != 'L' && tok[0] != 'R') {
			return nil, puzzle.Malformed("bad instruction %q", tok)
		}
		n, err := parse.Int(tok[1:])
		if err != nil {
			return nil, err
		}
		steps = append(steps, turnStep{right: tok[0] == 'R', n: n})
	}
	return steps, nil
}

func solveDay01(input string) (puzzle.Answer, error) {
	steps, err := parseTurns(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	var (
		origin  geom.Location
		pos     geom.Location
		facing  = geom.Up
		seen    = map[geom.Location]bool{origin: true}
		revisit = -1
	)
	for _, s := range steps {
		facing = facing.Turn(s.right)
		for range s.n {
			pos = pos.Step(facing)
			if revisit < 0 && seen[pos] {
				revisit = pos.Manhattan(origin)
			}
			seen[pos] = true
		}
	}
	ans := puzzle.Answer{Part1: pos.Manhattan(origin)}
	if revisit >= 0 {
		ans.Part2 = revisit
	}
	return ans, nil
}
