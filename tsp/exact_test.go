package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/tsp"
)

// London, Dublin, Belfast.
var cities = [][]int{
	{0, 464, 518},
	{464, 0, 141},
	{518, 141, 0},
}

func TestSolve_Open(t *testing.T) {
	tests := []struct {
		name string
		obj  tsp.Objective
		want int
	}{
		{"shortest", tsp.Minimize, 605},
		{"longest", tsp.Maximize, 982},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := tsp.Solve(cities, tsp.Options{Objective: tc.obj})
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Cost)
			assert.Len(t, res.Tour, 3)
		})
	}
}

func TestSolve_Closed(t *testing.T) {
	dist := [][]int{
		{0, 1, 15, 6},
		{2, 0, 7, 3},
		{9, 6, 0, 12},
		{10, 4, 8, 0},
	}
	res, err := tsp.Solve(dist, tsp.Options{Closed: true})
	require.NoError(t, err)
	assert.Equal(t, 21, res.Cost)
	assert.Equal(t, []int{0, 1, 3, 2, 0}, res.Tour)
}

func TestSolve_SingleVertex(t *testing.T) {
	res, err := tsp.Solve([][]int{{0}}, tsp.Options{Closed: true})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Cost)
	assert.Equal(t, []int{0, 0}, res.Tour)
}

func TestSolve_Errors(t *testing.T) {
	_, err := tsp.Solve(nil, tsp.Options{})
	assert.ErrorIs(t, err, tsp.ErrEmptyMatrix)

	_, err = tsp.Solve([][]int{{0, 1}, {1}}, tsp.Options{})
	assert.ErrorIs(t, err, tsp.ErrNonSquare)

	big := make([][]int, tsp.MaxVertices+1)
	for i := range big {
		big[i] = make([]int, len(big))
	}
	_, err = tsp.Solve(big, tsp.Options{})
	assert.ErrorIs(t, err, tsp.ErrTooLarge)
}

func TestSolve_AtLimit(t *testing.T) {
	n := tsp.MaxVertices
	dist := make([][]int, n)
	for i := range dist {
		dist[i] = make([]int, n)
		for j := range dist[i] {
			dist[i][j] = 10
		}
		dist[i][(i+1)%n] = 1
	}
	res, err := tsp.Solve(dist, tsp.Options{Closed: true})
	require.NoError(t, err)
	assert.Equal(t, n, res.Cost)
	require.Len(t, res.Tour, n+1)
	for i := range n {
		assert.Equal(t, i, res.Tour[i])
	}
}
