package y2016

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
)

func TestDay01(t *testing.T) {
	for in, want := range map[string]int{
		"R2, L3":         5,
		"R2, R2, R2":     2,
		"R5, L5, R5, R3": 12,
	} {
		ans, err := solveDay01(in)
		require.NoError(t, err)
		assert.Equal(t, want, ans.Part1, in)
	}

	ans, err := solveDay01("R8, R4, R4, R8")
	require.NoError(t, err)
	assert.Equal(t, 4, ans.Part2)

	ans, err = solveDay01("R2, L3")
	require.NoError(t, err)
	assert.Nil(t, ans.Part2)

	_, err = solveDay01("R2, X3")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
