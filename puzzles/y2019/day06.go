package y2019

import (
	"github.com/katalvlaran/advent/bfs"
	"github.com/katalvlaran/advent/graph"
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2019, 6, solveDay06) }

func parseOrbits(input string) (*graph.Graph[string], error) {
	g := graph.New[string]()
	for _, line := range parse.Lines(input) {
		center, sat, err := parse.Cut(line, ")")
		if err != nil {
			return nil, err
		}
		g.AddEdge(center, sat, 1)
	}
	if !g.HasVertex("COM") {
		return nil, puzzle.Malformed("no COM in orbit map")
	}
	return g, nil
}

func solveDay06(input string) (puzzle.Answer, error) {
	g, err := parseOrbits(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	res, err := bfs.Search([]string{"COM"}, g.Successors)
	if err != nil {
		return puzzle.Answer{}, err
	}
	total := 0
	for _, d := range res.Depth {
		total += d
	}
	ans := puzzle.Answer{Part1: total}
	if g.HasVertex("YOU") && g.HasVertex("SAN") {
		steps, _, ok := bfs.ShortestPath([]string{"YOU"}, g.Successors, func(s string) bool { return s == "SAN" })
		if ok {
			// transfers count hops between the bodies YOU and SAN orbit
			ans.Part2 = steps - 2
		}
	}
	return ans, nil
}
