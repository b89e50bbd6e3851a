package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/bfs"
	"github.com/katalvlaran/advent/graph"
)

// chain returns neighbors on the integer line 0..n.
func chain(n int) func(int) []int {
	return func(v int) []int {
		var out []int
		if v > 0 {
			out = append(out, v-1)
		}
		if v < n {
			out = append(out, v+1)
		}
		return out
	}
}

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	_, err := bfs.Search(nil, chain(3))
	assert.ErrorIs(t, err, bfs.ErrNoStart)

	_, err = bfs.Search([]int{0}, chain(3), bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestSearch_Depths(t *testing.T) {
	res, err := bfs.Search([]int{0}, chain(5))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, res.Order)
	assert.Equal(t, 5, res.Depth[5])

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)
}

func TestSearch_MultiSourceAndMaxDepth(t *testing.T) {
	res, err := bfs.Search([]int{0, 10, 0}, chain(10), bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2, 10, 9, 8}, res.Order)
	assert.False(t, res.Reached(5))

	_, err = res.PathTo(5)
	assert.ErrorIs(t, err, bfs.ErrNotReached)
}

func TestSearch_OverGraph(t *testing.T) {
	g := graph.New[string]()
	g.AddEdge("COM", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("B", "G", 1)
	g.AddEdge("G", "H", 1)

	res, err := bfs.Search([]string{"H"}, g.Successors)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Depth["COM"])
	assert.Equal(t, 3, res.Depth["C"])
}

func TestShortestPath(t *testing.T) {
	steps, end, ok := bfs.ShortestPath([]int{3}, chain(100), func(v int) bool { return v%7 == 0 && v > 3 })
	assert.True(t, ok)
	assert.Equal(t, 7, end)
	assert.Equal(t, 4, steps)

	_, _, ok = bfs.ShortestPath([]int{3}, chain(5), func(v int) bool { return v > 5 })
	assert.False(t, ok)
}
