package y2025

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day02Example = `11-22,95-115,998-1012,1188511880-1188511890,222220-222224,
1698522-1698528,446443-446449,38593856-38593862,565653-565659,
824824821-824824827,2121212118-2121212124`

func TestInvalidIDs(t *testing.T) {
	assert.True(t, doubled(1010))
	assert.True(t, doubled(222222))
	assert.False(t, doubled(111))
	assert.True(t, repeated(111))
	assert.True(t, repeated(824824824))
	assert.False(t, repeated(1012))
}

func TestDay02(t *testing.T) {
	ans, err := solveDay02(day02Example)
	require.NoError(t, err)
	assert.Equal(t, 1227775554, ans.Part1)
	assert.Equal(t, 4174379265, ans.Part2)
}
