package y2021

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/grid"
)

const day11Example = `5483143223
2745854711
5264556173
6141336146
6357385478
4167524645
2176841721
6882881134
4846848554
5283751526`

func TestDay11(t *testing.T) {
	g, err := grid.Digits(day11Example)
	require.NoError(t, err)
	total := 0
	for range 10 {
		total += octopusStep(g)
	}
	assert.Equal(t, 204, total)

	ans, err := solveDay11(day11Example)
	require.NoError(t, err)
	assert.Equal(t, 1656, ans.Part1)
	assert.Equal(t, 195, ans.Part2)
}
