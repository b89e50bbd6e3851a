package y2020

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2020, 13, solveDay13) }

// bus is a route id and the minute offset it must depart at.
type bus struct {
	id, offset int
}

func parseBuses(s string) ([]bus, error) {
	var out []bus
	for i, f := range strings.Split(strings.TrimSpace(s), ",") {
		if f == "x" {
			continue
		}
		id, err := strconv.Atoi(f)
		if err != nil || id <= 0 {
			return nil, puzzle.Malformed("bad bus id %q", f)
		}
		out = append(out, bus{id: id, offset: i})
	}
	if len(out) == 0 {
		return nil, puzzle.Malformed("no buses in service")
	}
	return out, nil
}

func earliestBus(at int, buses []bus) int {
	bestID, bestWait := 0, -1
	for _, b := range buses {
		wait := (b.id - at%b.id) % b.id
		if bestWait < 0 || wait < bestWait {
			bestID, bestWait = b.id, wait
		}
	}
	return bestID * bestWait
}

// contest finds the first t where each bus departs at t+offset. The ids are
// pairwise coprime, so sieving one bus at a time while growing the step by
// the lcm so far converges quickly.
func contest(buses []bus) int {
	t, step := 0, 1
	for _, b := range buses {
		for (t+b.offset)%b.id != 0 {
			t += step
		}
		step = lcm(step, b.id)
	}
	return t
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int { return a / gcd(a, b) * b }

func solveDay13(input string) (puzzle.Answer, error) {
	lines := parse.Lines(input)
	if len(lines) != 2 {
		return puzzle.Answer{}, puzzle.Malformed("want two lines, got %d", len(lines))
	}
	at, err := parse.Int(lines[0])
	if err != nil {
		return puzzle.Answer{}, err
	}
	buses, err := parseBuses(lines[1])
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: earliestBus(at, buses), Part2: contest(buses)}, nil
}
