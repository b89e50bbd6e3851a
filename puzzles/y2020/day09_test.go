package y2020

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
)

func TestXMAS(t *testing.T) {
	nums := []int{35, 20, 15, 25, 47, 40, 62, 55, 65, 95, 102, 117, 150, 182, 127, 219, 299, 277, 309, 576}
	ans, err := solveXMAS(nums, 5)
	require.NoError(t, err)
	assert.Equal(t, 127, ans.Part1)
	assert.Equal(t, 62, ans.Part2)

	_, err = solveXMAS([]int{1, 2, 3}, 2)
	assert.ErrorIs(t, err, puzzle.ErrNoSolution)
}
