package dfs

import (
	"errors"

	"github.com/katalvlaran/advent/graph"
)

// HasCycle reports whether the directed graph g contains a cycle.
func HasCycle[K comparable](g *graph.Graph[K]) (bool, error) {
	_, err := TopologicalSort(g)
	if errors.Is(err, ErrCycleDetected) {
		return true, nil
	}
	return false, err
}
