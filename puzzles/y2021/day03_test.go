package y2021

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
)

const day03Example = `00100
11110
10110
10111
10101
01111
00111
11100
10000
11001
00010
01010`

func TestDay03(t *testing.T) {
	ans, err := solveDay03(day03Example)
	require.NoError(t, err)
	assert.Equal(t, 198, ans.Part1)
	assert.Equal(t, 230, ans.Part2)

	_, err = solveDay03("0102")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
