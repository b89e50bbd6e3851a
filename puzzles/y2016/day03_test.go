package y2016

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay03(t *testing.T) {
	assert.False(t, triangle(5, 10, 25))
	assert.True(t, triangle(3, 4, 5))

	ans, err := solveDay03("101 301 501\n102 302 502\n103 303 503\n201 401 601\n202 402 602\n203 403 603")
	require.NoError(t, err)
	assert.Equal(t, 3, ans.Part1)
	assert.Equal(t, 6, ans.Part2)

	ans, err = solveDay03("  5  10  25")
	require.NoError(t, err)
	assert.Equal(t, 0, ans.Part1)
	assert.Nil(t, ans.Part2)
}
