package y2024

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay10(t *testing.T) {
	ans, err := solveDay10("0123\n1234\n8765\n9876")
	require.NoError(t, err)
	assert.Equal(t, 1, ans.Part1)

	ans, err = solveDay10("89010123\n78121874\n87430965\n96549874\n45678903\n32019012\n01329801\n10456732")
	require.NoError(t, err)
	assert.Equal(t, 36, ans.Part1)
	assert.Equal(t, 81, ans.Part2)
}
