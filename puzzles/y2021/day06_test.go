package y2021

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay06(t *testing.T) {
	assert.Equal(t, 26, lanternfish([]int{3, 4, 3, 1, 2}, 18))

	ans, err := solveDay06("3,4,3,1,2")
	require.NoError(t, err)
	assert.Equal(t, 5934, ans.Part1)
	assert.Equal(t, 26984457539, ans.Part2)
}
