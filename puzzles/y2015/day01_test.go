package y2015

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
)

func TestDay01(t *testing.T) {
	tests := []struct {
		in    string
		floor int
	}{
		{"(())", 0}, {"()()", 0}, {"(((", 3}, {"(()(()(", 3}, {"))(((((", 3},
		{"())", -1}, {"))(", -1}, {")))", -3}, {")())())", -3},
	}
	for _, tc := range tests {
		ans, err := solveDay01(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.floor, ans.Part1, tc.in)
	}

	ans, err := solveDay01("()())")
	require.NoError(t, err)
	assert.Equal(t, 5, ans.Part2)

	ans, err = solveDay01("(((")
	require.NoError(t, err)
	assert.Nil(t, ans.Part2)

	_, err = solveDay01("(x")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
