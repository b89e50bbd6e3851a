package y2021

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
)

const day05Example = `0,9 -> 5,9
8,0 -> 0,8
9,4 -> 3,4
2,2 -> 2,1
7,0 -> 7,4
6,4 -> 2,0
0,9 -> 2,9
3,4 -> 1,4
0,0 -> 8,8
5,5 -> 8,2`

func TestDay05(t *testing.T) {
	ans, err := solveDay05(day05Example)
	require.NoError(t, err)
	assert.Equal(t, 5, ans.Part1)
	assert.Equal(t, 12, ans.Part2)

	_, err = solveDay05("0,0 -> 2,1")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
