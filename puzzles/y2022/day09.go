package y2022

import (
	"strings"

	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2022, 9, solveDay09) }

type ropeMotion struct {
	dir   geom.Direction
	steps int
}

func parseMotions(input string) ([]ropeMotion, error) {
	var out []ropeMotion
	for _, line := range parse.Lines(input) {
		d, n, err := parse.Cut(line, " ")
		if err != nil {
			return nil, err
		}
		if len(d) != 1 {
			return nil, puzzle.Malformed("bad motion %q", line)
		}
		dir, err := geom.ParseDirection(rune(d[0]))
		if err != nil {
			return nil, puzzle.Malformed("bad motion %q: %v", line, err)
		}
		steps, err := parse.Int(strings.TrimSpace(n))
		if err != nil {
			return nil, err
		}
		out = append(out, ropeMotion{dir, steps})
	}
	return out, nil
}

// tailVisits drags a rope of knots along motions and counts the cells the
// last knot touches. A knot follows when its leader is more than one step
// away in either axis.
func tailVisits(motions []ropeMotion, knots int) int {
	rope := make([]geom.Pt, knots)
	seen := map[geom.Pt]bool{rope[knots-1]: true}
	for _, m := range motions {
		for range m.steps {
			rope[0] = rope[0].Add(m.dir.Pt())
			for i := 1; i < knots; i++ {
				gap := rope[i-1].Sub(rope[i])
				if rope[i-1].Chebyshev(rope[i]) <= 1 {
					break
				}
				rope[i] = rope[i].Add(gap.Sign())
			}
			seen[rope[knots-1]] = true
		}
	}
	return len(seen)
}

func solveDay09(input string) (puzzle.Answer, error) {
	motions, err := parseMotions(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: tailVisits(motions, 2), Part2: tailVisits(motions, 10)}, nil
}
