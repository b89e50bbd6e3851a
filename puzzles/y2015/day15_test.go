package y2015

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay15(t *testing.T) {
	ans, err := solveDay15(`Butterscotch: capacity -1, durability -2, flavor 6, texture 3, calories 8
Cinnamon: capacity 2, durability 3, flavor -2, texture -1, calories 3`)
	require.NoError(t, err)
	assert.Equal(t, 62842880, ans.Part1)
	assert.Equal(t, 57600000, ans.Part2)
}
