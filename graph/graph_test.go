package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/graph"
)

func TestUndirected(t *testing.T) {
	g := graph.New[string]()
	g.AddEdge("London", "Dublin", 464)
	g.AddEdge("London", "Belfast", 518)
	g.AddEdge("Dublin", "Belfast", 141)

	assert.False(t, g.Directed())
	assert.Equal(t, []string{"London", "Dublin", "Belfast"}, g.Vertices())
	assert.Equal(t, 3, g.Len())

	w, ok := g.Weight("Belfast", "London")
	assert.True(t, ok)
	assert.Equal(t, 518, w)
	assert.True(t, g.HasEdge("Dublin", "London"))
	assert.Len(t, g.Edges(), 6)

	nb, err := g.Neighbors("Dublin")
	require.NoError(t, err)
	assert.Equal(t, []string{"London", "Belfast"}, []string{nb[0].To, nb[1].To})

	_, err = g.Neighbors("Paris")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
	assert.Empty(t, g.Successors("Paris"))
}

func TestDirected_UpdateAndReverse(t *testing.T) {
	g := graph.New[int](graph.WithDirected())
	g.AddEdge(1, 2, 5)
	g.AddEdge(1, 3, 1)
	g.AddEdge(1, 2, 7)

	assert.True(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(2, 1))
	w, _ := g.Weight(1, 2)
	assert.Equal(t, 7, w)
	assert.Equal(t, []int{2, 3}, g.Successors(1))

	r := g.Reverse()
	assert.True(t, r.HasEdge(2, 1))
	assert.False(t, r.HasEdge(1, 2))
	assert.Equal(t, []int{1}, r.Successors(3))
	assert.Equal(t, g.Vertices(), r.Vertices())
}

func TestInduced(t *testing.T) {
	g := graph.New[int](graph.WithDirected())
	g.AddEdge(47, 53, 0)
	g.AddEdge(97, 13, 0)
	g.AddEdge(97, 47, 0)
	g.AddEdge(75, 29, 0)
	g.AddEdge(47, 13, 0)

	s := g.Induced([]int{97, 47, 13, 99})
	assert.ElementsMatch(t, []int{97, 47, 13, 99}, s.Vertices())
	assert.True(t, s.HasEdge(97, 47))
	assert.True(t, s.HasEdge(47, 13))
	assert.False(t, s.HasVertex(53))
	assert.Len(t, s.Edges(), 3)
}
