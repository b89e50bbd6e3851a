package y2020

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day03Example = `..##.......
#...#...#..
.#....#..#.
..#.#...#.#
.#...##..#.
..#.##.....
.#.#.#....#
.#........#
#.##...#...
#...##....#
.#..#...#.#`

func TestDay03(t *testing.T) {
	ans, err := solveDay03(day03Example)
	require.NoError(t, err)
	assert.Equal(t, 7, ans.Part1)
	assert.Equal(t, 336, ans.Part2)
}
