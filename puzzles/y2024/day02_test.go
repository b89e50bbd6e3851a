package y2024

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportSafe(t *testing.T) {
	tests := []struct {
		levels         []int
		safe, dampened bool
	}{
		{[]int{7, 6, 4, 2, 1}, true, true},
		{[]int{1, 2, 7, 8, 9}, false, false},
		{[]int{9, 7, 6, 2, 1}, false, false},
		{[]int{1, 3, 2, 4, 5}, false, true},
		{[]int{8, 6, 4, 4, 1}, false, true},
		{[]int{1, 3, 6, 7, 9}, true, true},
		{[]int{5, 1, 2, 3}, false, true},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.safe, reportSafe(tc.levels, -1), "%v", tc.levels)
		assert.Equal(t, tc.dampened, dampenedSafe(tc.levels), "%v", tc.levels)
	}
}

func TestDay02(t *testing.T) {
	ans, err := solveDay02("7 6 4 2 1\n1 2 7 8 9\n9 7 6 2 1\n1 3 2 4 5\n8 6 4 4 1\n1 3 6 7 9")
	require.NoError(t, err)
	assert.Equal(t, 2, ans.Part1)
	assert.Equal(t, 4, ans.Part2)
}
