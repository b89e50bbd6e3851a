package y2015

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay12(t *testing.T) {
	tests := []struct {
		in       string
		all, red int
	}{
		{`[1,2,3]`, 6, 6},
		{`{"a":2,"b":4}`, 6, 6},
		{`[[[3]]]`, 3, 3},
		{`{"a":{"b":4},"c":-1}`, 3, 3},
		{`[-1,{"a":1}]`, 0, 0},
		{`{}`, 0, 0},
		{`[1,{"c":"red","b":2},3]`, 6, 4},
		{`{"d":"red","e":[1,2,3,4],"f":5}`, 15, 0},
		{`[1,"red",5]`, 6, 6},
	}
	for _, tc := range tests {
		ans, err := solveDay12(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.all, ans.Part1, tc.in)
		assert.Equal(t, tc.red, ans.Part2, tc.in)
	}

	_, err := solveDay12("{")
	assert.Error(t, err)
}
