package y2015

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay24(t *testing.T) {
	ans, err := solveDay24("1\n2\n3\n4\n5\n7\n8\n9\n10\n11")
	require.NoError(t, err)
	assert.Equal(t, 99, ans.Part1)
	assert.Equal(t, 44, ans.Part2)
}
