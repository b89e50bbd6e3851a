package dfs

import (
	"fmt"

	"github.com/katalvlaran/advent/graph"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[K comparable] struct {
	graph *graph.Graph[K]
	state map[K]int
	order []K // post-order
}

// TopologicalSort computes an ordering of all vertices in g such that for
// every edge u→v, u appears before v. The order is deterministic, derived
// from insertion order through a reversed depth-first post-order.
// A cycle yields ErrCycleDetected.
func TopologicalSort[K comparable](g *graph.Graph[K]) ([]K, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}
	verts := g.Vertices()
	t := &topoSorter[K]{
		graph: g,
		state: make(map[K]int, len(verts)),
		order: make([]K, 0, len(verts)),
	}
	for _, v := range verts {
		if t.state[v] == White {
			if err := t.visit(v); err != nil {
				return nil, err
			}
		}
	}
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}
	return t.order, nil
}

func (t *topoSorter[K]) visit(v K) error {
	switch t.state[v] {
	case Gray:
		return fmt.Errorf("%w: back edge into %v", ErrCycleDetected, v)
	case Black:
		return nil
	}
	t.state[v] = Gray
	for _, w := range t.graph.Successors(v) {
		if err := t.visit(w); err != nil {
			return err
		}
	}
	t.state[v] = Black
	t.order = append(t.order, v)
	return nil
}
