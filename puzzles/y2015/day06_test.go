package y2015

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
)

func TestDay06(t *testing.T) {
	tests := []struct {
		in         string
		on, bright int
	}{
		{"turn on 0,0 through 999,999", 1000000, 1000000},
		{"toggle 0,0 through 999,0", 1000, 2000},
		{"turn on 0,0 through 999,999\nturn off 499,499 through 500,500", 999996, 999996},
		{"turn on 0,0 through 0,0\ntoggle 0,0 through 999,999", 999999, 2000001},
	}
	for _, tc := range tests {
		ans, err := solveDay06(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.on, ans.Part1, tc.in)
		assert.Equal(t, tc.bright, ans.Part2, tc.in)
	}

	_, err := solveDay06("dim 0,0 through 1,1")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
