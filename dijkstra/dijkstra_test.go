package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/dijkstra"
	"github.com/katalvlaran/advent/graph"
)

// fromGraph adapts a weighted graph to a neighbors function.
func fromGraph(g *graph.Graph[string]) func(string) []dijkstra.Edge[string] {
	return func(v string) []dijkstra.Edge[string] {
		es, _ := g.Neighbors(v)
		out := make([]dijkstra.Edge[string], len(es))
		for i, e := range es {
			out[i] = dijkstra.Edge[string]{To: e.To, Cost: e.Weight}
		}
		return out
	}
}

func sample() *graph.Graph[string] {
	g := graph.New[string](graph.WithDirected())
	g.AddEdge("A", "B", 4)
	g.AddEdge("A", "C", 1)
	g.AddEdge("C", "B", 2)
	g.AddEdge("B", "D", 1)
	g.AddEdge("C", "D", 5)
	g.AddVertex("E")
	return g
}

func TestRun_Distances(t *testing.T) {
	res, err := dijkstra.Run([]string{"A"}, fromGraph(sample()))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 0, "C": 1, "B": 3, "D": 4}, res.Dist)

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B", "D"}, path)

	_, err = res.PathTo("E")
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

func TestRun_Errors(t *testing.T) {
	_, err := dijkstra.Run(nil, fromGraph(sample()))
	assert.ErrorIs(t, err, dijkstra.ErrNoStart)

	g := sample()
	g.AddEdge("D", "A", -1)
	_, err = dijkstra.Distances([]string{"A"}, fromGraph(g))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

// TestSearch_Unbounded searches the naturals where +1 costs 1 and ×2 costs 1.
func TestSearch_Unbounded(t *testing.T) {
	nb := func(n int) []dijkstra.Edge[int] {
		return []dijkstra.Edge[int]{{To: n + 1, Cost: 1}, {To: n * 2, Cost: 1}}
	}
	cost, end, ok, err := dijkstra.Search([]int{1}, nb, func(n int) bool { return n == 10 })
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 10, end)
	assert.Equal(t, 4, cost) // 1→2→4→5→10
}

func TestSearch_NoGoal(t *testing.T) {
	_, _, ok, err := dijkstra.Search([]string{"A"}, fromGraph(sample()), func(s string) bool { return s == "E" })
	require.NoError(t, err)
	assert.False(t, ok)
}
