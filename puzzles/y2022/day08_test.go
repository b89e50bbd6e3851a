package y2022

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay08(t *testing.T) {
	ans, err := solveDay08("30373\n25512\n65332\n33549\n35390")
	require.NoError(t, err)
	assert.Equal(t, 21, ans.Part1)
	assert.Equal(t, 8, ans.Part2)
}
