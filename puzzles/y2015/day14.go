package y2015

import (
	"regexp"
	"strconv"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2015, 14, solveDay14) }

var reindeerRx = regexp.MustCompile(`^(\w+) can fly (\d+) km/s for (\d+) seconds?, but then must rest for (\d+) seconds?\.$`)

type reindeer struct {
	speed, fly, rest int
}

// distance is how far r has flown after t seconds.
func (r reindeer) distance(t int) int {
	cycle := r.fly + r.rest
	flown := t/cycle*r.fly + min(t%cycle, r.fly)
	return flown * r.speed
}

func parseReindeer(input string) ([]reindeer, error) {
	var out []reindeer
	for _, line := range parse.Lines(input) {
		m, err := parse.Scan(reindeerRx, line)
		if err != nil {
			return nil, err
		}
		var r reindeer
		r.speed, _ = strconv.Atoi(m[1])
		r.fly, _ = strconv.Atoi(m[2])
		r.rest, _ = strconv.Atoi(m[3])
		out = append(out, r)
	}
	if len(out) == 0 {
		return nil, puzzle.Malformed("no reindeer")
	}
	return out, nil
}

// race returns the winning distance and winning score after seconds.
// Every second, all reindeer in the lead score a point.
func race(herd []reindeer, seconds int) (dist, points int) {
	score := make([]int, len(herd))
	for t := 1; t <= seconds; t++ {
		lead := 0
		for _, r := range herd {
			lead = max(lead, r.distance(t))
		}
		for i, r := range herd {
			if r.distance(t) == lead {
				score[i]++
			}
		}
	}
	for i, r := range herd {
		dist = max(dist, r.distance(seconds))
		points = max(points, score[i])
	}
	return dist, points
}

func solveDay14(input string) (puzzle.Answer, error) {
	herd, err := parseReindeer(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	d, p := race(herd, 2503)
	return puzzle.Answer{Part1: d, Part2: p}, nil
}
