package y2019

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay01(t *testing.T) {
	tests := []struct{ mass, fuel, total int }{
		{12, 2, 2},
		{14, 2, 2},
		{1969, 654, 966},
		{100756, 33583, 50346},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.fuel, fuel(tc.mass))
		assert.Equal(t, tc.total, totalFuel(tc.mass))
	}

	ans, err := solveDay01("12\n1969\n")
	require.NoError(t, err)
	assert.Equal(t, 656, ans.Part1)
	assert.Equal(t, 968, ans.Part2)
}
