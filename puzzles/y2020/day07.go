package y2020

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/bfs"
	"github.com/katalvlaran/advent/graph"
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2020, 7, solveDay07) }

const myBag = "shiny gold"

var bagRx = regexp.MustCompile(`(\d+) (\w+ \w+) bags?`)

// parseBags returns a directed graph with an edge outer→inner weighted by
// how many inner bags the outer one holds.
func parseBags(input string) (*graph.Graph[string], error) {
	g := graph.New[string](graph.WithDirected())
	for _, line := range parse.Lines(input) {
		outer, inner, err := parse.Cut(strings.TrimSpace(line), " bags contain ")
		if err != nil {
			return nil, err
		}
		g.AddVertex(outer)
		if strings.HasPrefix(inner, "no other") {
			continue
		}
		ms := bagRx.FindAllStringSubmatch(inner, -1)
		if ms == nil {
			return nil, puzzle.Malformed("bad contents %q", inner)
		}
		for _, m := range ms {
			n, _ := strconv.Atoi(m[1])
			g.AddEdge(outer, m[2], n)
		}
	}
	return g, nil
}

// bagsInside counts every bag nested in outer, memoised per colour.
func bagsInside(g *graph.Graph[string], outer string, memo map[string]int) int {
	if n, ok := memo[outer]; ok {
		return n
	}
	total := 0
	edges, _ := g.Neighbors(outer)
	for _, e := range edges {
		total += e.Weight * (1 + bagsInside(g, e.To, memo))
	}
	memo[outer] = total
	return total
}

func solveDay07(input string) (puzzle.Answer, error) {
	g, err := parseBags(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if !g.HasVertex(myBag) {
		return puzzle.Answer{}, puzzle.Malformed("no rule mentions %s", myBag)
	}
	holders, err := bfs.Search([]string{myBag}, g.Reverse().Successors)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{
		Part1: len(holders.Order) - 1,
		Part2: bagsInside(g, myBag, map[string]int{}),
	}, nil
}
