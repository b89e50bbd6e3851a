package y2025

import (
	"strings"

	"github.com/katalvlaran/advent/intervals"
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2025, 5, solveDay05) }

// parseInventory reads fresh ranges ("3-5") and ingredient IDs in any
// order; blank lines are ignored.
func parseInventory(input string) (*intervals.Set, []int, error) {
	fresh := intervals.Merge()
	var ids []int
	for _, line := range parse.Lines(input) {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case strings.Contains(line, "-"):
			n, err := parse.Split(line, "-")
			if err != nil {
				return nil, nil, err
			}
			if len(n) != 2 || n[0] > n[1] {
				return nil, nil, puzzle.Malformed("bad range %q", line)
			}
			fresh.Add(intervals.Interval{Lo: n[0], Hi: n[1]})
		default:
			id, err := parse.Int(line)
			if err != nil {
				return nil, nil, err
			}
			ids = append(ids, id)
		}
	}
	return fresh, ids, nil
}

func solveDay05(input string) (puzzle.Answer, error) {
	fresh, ids, err := parseInventory(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	available := 0
	for _, id := range ids {
		if fresh.Contains(id) {
			available++
		}
	}
	return puzzle.Answer{Part1: available, Part2: fresh.Len()}, nil
}
