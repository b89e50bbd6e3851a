package y2023

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay03(t *testing.T) {
	const example = "467..114..\n...*......\n..35..633.\n......#...\n617*......\n.....+.58.\n..592.....\n......755.\n...$.*....\n.664.598.."
	ans, err := solveDay03(example)
	require.NoError(t, err)
	assert.Equal(t, 4361, ans.Part1)
	assert.Equal(t, 467835, ans.Part2)

	ans, err = solveDay03(".2.\n.*.\n585")
	require.NoError(t, err)
	assert.Equal(t, 1170, ans.Part2)
}
