package y2015

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay25(t *testing.T) {
	tests := []struct{ row, col, want int }{
		{1, 1, 20151125},
		{2, 1, 31916031},
		{1, 2, 18749137},
		{4, 2, 32451966},
		{6, 6, 27995004},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, weatherCode(tc.row, tc.col), "(%d,%d)", tc.row, tc.col)
	}

	ans, err := solveDay25("To continue, please consult the code grid in the manual.  Enter the code at row 2947, column 3029.")
	require.NoError(t, err)
	assert.Equal(t, 19980801, ans.Part1)
	assert.Nil(t, ans.Part2)
}
