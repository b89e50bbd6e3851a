package y2015

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
)

func TestDay16(t *testing.T) {
	ans, err := solveDay16(`Sue 1: cats: 7, trees: 3, cars: 2
Sue 2: goldfish: 9, akitas: 0, perfumes: 1
Sue 3: cats: 8, trees: 4, goldfish: 4
Sue 4: children: 3, samoyeds: 2, vizslas: 0`)
	require.NoError(t, err)
	assert.Equal(t, 1, ans.Part1)
	assert.Equal(t, 3, ans.Part2)

	_, err = solveDay16("Sue 1: cats: 1")
	assert.ErrorIs(t, err, puzzle.ErrNoSolution)
}
