package y2024

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay12(t *testing.T) {
	tests := []struct {
		name            string
		garden          string
		perimeter, side int
	}{
		{"small", "AAAA\nBBCD\nBBCC\nEEEC", 140, 80},
		{"holes", "OOOOO\nOXOXO\nOOOOO\nOXOXO\nOOOOO", 772, 436},
		{"large", "RRRRIICCFF\nRRRRIICCCF\nVVRRRCCFFF\nVVRCCCJFFF\nVVVVCJJCFE\nVVIVCCJJEE\nVVIIICJJEE\nMIIIIIJJEE\nMIIISIJEEE\nMMMISSJEEE", 1930, 1206},
		{"e-shape", "EEEEE\nEXXXX\nEEEEE\nEXXXX\nEEEEE", 692, 236},
		{"diagonal", "AAAAAA\nAAABBA\nAAABBA\nABBAAA\nABBAAA\nAAAAAA", 1184, 368},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ans, err := solveDay12(tc.garden)
			require.NoError(t, err)
			assert.Equal(t, tc.perimeter, ans.Part1)
			assert.Equal(t, tc.side, ans.Part2)
		})
	}
}
