package y2015

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay02(t *testing.T) {
	ans, err := solveDay02("2x3x4\n1x1x10\n")
	require.NoError(t, err)
	assert.Equal(t, 58+43, ans.Part1)
	assert.Equal(t, 34+14, ans.Part2)

	_, err = solveDay02("2x3")
	assert.Error(t, err)
}
