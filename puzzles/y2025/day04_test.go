package y2025

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day04Example = `..@@.@@@@.
@@@.@.@.@@
@@@@@.@.@@
@.@@@@..@.
@@.@@@@.@@
.@@@@@@@.@
.@.@.@.@@@
@.@@@.@@@@
.@@@@@@@@.
@.@.@@@.@.`

func TestDay04(t *testing.T) {
	ans, err := solveDay04(day04Example)
	require.NoError(t, err)
	assert.Equal(t, 13, ans.Part1)
	assert.Equal(t, 43, ans.Part2)
}
