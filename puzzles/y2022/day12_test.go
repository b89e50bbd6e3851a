package y2022

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
)

func TestDay12(t *testing.T) {
	ans, err := solveDay12("Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi")
	require.NoError(t, err)
	assert.Equal(t, 31, ans.Part1)
	assert.Equal(t, 29, ans.Part2)

	_, err = solveDay12("Sacz\nzzzE")
	assert.ErrorIs(t, err, puzzle.ErrNoSolution)
}
