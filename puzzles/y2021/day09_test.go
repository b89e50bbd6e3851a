package y2021

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay09(t *testing.T) {
	const example = "2199943210\n3987894921\n9856789892\n8767896789\n9899965678"
	ans, err := solveDay09(example)
	require.NoError(t, err)
	assert.Equal(t, 15, ans.Part1)
	assert.Equal(t, 1134, ans.Part2)
}
