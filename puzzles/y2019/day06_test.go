package y2019

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
)

const day06Example = "COM)B\nB)C\nC)D\nD)E\nE)F\nB)G\nG)H\nD)I\nE)J\nJ)K\nK)L"

func TestDay06(t *testing.T) {
	ans, err := solveDay06(day06Example)
	require.NoError(t, err)
	assert.Equal(t, 42, ans.Part1)
	assert.Nil(t, ans.Part2)

	ans, err = solveDay06(day06Example + "\nK)YOU\nI)SAN")
	require.NoError(t, err)
	assert.Equal(t, 4, ans.Part2)

	_, err = solveDay06("A)B")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
