package y2024

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day08Example = `............
........0...
.....0......
.......0....
....0.......
......A.....
............
............
........A...
.........A..
............
............`

func TestDay08(t *testing.T) {
	ans, err := solveDay08(day08Example)
	require.NoError(t, err)
	assert.Equal(t, 14, ans.Part1)
	assert.Equal(t, 34, ans.Part2)
}
