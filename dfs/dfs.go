package dfs

import (
	"fmt"

	"github.com/katalvlaran/advent/graph"
)

// Walk returns vertices reachable from start in DFS pre-order.
func Walk[K comparable](g *graph.Graph[K], start K) ([]K, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}
	seen := make(map[K]bool)
	var order []K
	var visit func(K)
	visit = func(v K) {
		seen[v] = true
		order = append(order, v)
		for _, w := range g.Successors(v) {
			if !seen[w] {
				visit(w)
			}
		}
	}
	visit(start)
	return order, nil
}
