package y2024

import (
	"slices"

	"github.com/katalvlaran/advent/dfs"
	"github.com/katalvlaran/advent/graph"
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2024, 5, solveDay05) }

// pageRules is the directed "must print before" graph.
type pageRules struct{ g *graph.Graph[int] }

func (r pageRules) inOrder(update []int) bool {
	for i := 1; i < len(update); i++ {
		if r.g.HasEdge(update[i], update[i-1]) {
			return false
		}
	}
	return true
}

// reorder sorts update by the rules among its own pages; the full rule
// graph may be cyclic but each update's slice of it is not.
func (r pageRules) reorder(update []int) ([]int, error) {
	return dfs.TopologicalSort(r.g.Induced(update))
}

func parsePrintQueue(input string) (pageRules, [][]int, error) {
	blocks := parse.Blocks(input)
	if len(blocks) != 2 {
		return pageRules{}, nil, puzzle.Malformed("want rules and updates")
	}
	g := graph.New[int](graph.WithDirected())
	for _, line := range parse.Lines(blocks[0]) {
		n, err := parse.Split(line, "|")
		if err != nil {
			return pageRules{}, nil, err
		}
		if len(n) != 2 {
			return pageRules{}, nil, puzzle.Malformed("bad rule %q", line)
		}
		g.AddEdge(n[0], n[1], 1)
	}
	var updates [][]int
	for _, line := range parse.Lines(blocks[1]) {
		u, err := parse.Split(line, ",")
		if err != nil {
			return pageRules{}, nil, err
		}
		updates = append(updates, u)
	}
	return pageRules{g}, updates, nil
}

func solveDay05(input string) (puzzle.Answer, error) {
	rules, updates, err := parsePrintQueue(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	ordered, fixed := 0, 0
	for _, u := range updates {
		if rules.inOrder(u) {
			ordered += u[len(u)/2]
			continue
		}
		sorted, err := rules.reorder(u)
		if err != nil {
			return puzzle.Answer{}, err
		}
		if !slices.Equal(slices.Sorted(slices.Values(sorted)), slices.Sorted(slices.Values(u))) {
			return puzzle.Answer{}, puzzle.Malformed("update %v repeats a page", u)
		}
		fixed += sorted[len(sorted)/2]
	}
	return puzzle.Answer{Part1: ordered, Part2: fixed}, nil
}
