package y2023

import (
	"strings"

	"github.com/katalvlaran/advent/intervals"
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2023, 5, solveDay05) }

type mapRule struct {
	src   intervals.Interval
	shift int
}

// almanacStage maps numbers covered by a rule; others pass through.
type almanacStage []mapRule

// apply sends every number of in through the stage.
func (st almanacStage) apply(in *intervals.Set) *intervals.Set {
	out := intervals.Merge()
	mapped := intervals.Merge()
	for _, r := range st {
		src := intervals.Merge(r.src)
		for _, iv := range in.Intersect(src).Intervals() {
			out.Add(intervals.Interval{Lo: iv.Lo + r.shift, Hi: iv.Hi + r.shift})
		}
		mapped.Add(r.src)
	}
	for _, iv := range in.Subtract(mapped).Intervals() {
		out.Add(iv)
	}
	return out
}

func parseAlmanac(input string) ([]int, []almanacStage, error) {
	blocks := parse.Blocks(input)
	if len(blocks) < 2 {
		return nil, nil, puzzle.Malformed("almanac has no maps")
	}
	_, seedText, err := parse.Cut(blocks[0], "seeds:")
	if err != nil {
		return nil, nil, err
	}
	seeds, err := parse.Fields(seedText)
	if err != nil {
		return nil, nil, err
	}
	var stages []almanacStage
	for _, b := range blocks[1:] {
		lines := strings.Split(b, "\n")
		var st almanacStage
		for _, line := range lines[1:] {
			n, err := parse.Fields(line)
			if err != nil {
				return nil, nil, err
			}
			if len(n) != 3 || n[2] <= 0 {
				return nil, nil, puzzle.Malformed("bad map line %q", line)
			}
			st = append(st, mapRule{
				src:   intervals.Interval{Lo: n[1], Hi: n[1] + n[2] - 1},
				shift: n[0] - n[1],
			})
		}
		stages = append(stages, st)
	}
	return seeds, stages, nil
}

func lowestLocation(seeds *intervals.Set, stages []almanacStage) (int, bool) {
	for _, st := range stages {
		seeds = st.apply(seeds)
	}
	ivs := seeds.Intervals()
	if len(ivs) == 0 {
		return 0, false
	}
	return ivs[0].Lo, true
}

func solveDay05(input string) (puzzle.Answer, error) {
	seeds, stages, err := parseAlmanac(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	single := intervals.Merge()
	for _, s := range seeds {
		single.Add(intervals.Interval{Lo: s, Hi: s})
	}
	var ans puzzle.Answer
	if low, ok := lowestLocation(single, stages); ok {
		ans.Part1 = low
	}
	if len(seeds)%2 == 0 {
		ranges := intervals.Merge()
		for i := 0; i < len(seeds); i += 2 {
			ranges.Add(intervals.Interval{Lo: seeds[i], Hi: seeds[i] + seeds[i+1] - 1})
		}
		if low, ok := lowestLocation(ranges, stages); ok {
			ans.Part2 = low
		}
	}
	return ans, nil
}
