package y2023

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaysToWin(t *testing.T) {
	assert.Equal(t, 4, waysToWin(7, 9))
	assert.Equal(t, 8, waysToWin(15, 40))
	assert.Equal(t, 9, waysToWin(30, 200))
	assert.Equal(t, 0, waysToWin(4, 4))
}

func TestDay06(t *testing.T) {
	ans, err := solveDay06("Time:      7  15   30\nDistance:  9  40  200")
	require.NoError(t, err)
	assert.Equal(t, 288, ans.Part1)
	assert.Equal(t, 71503, ans.Part2)
}
