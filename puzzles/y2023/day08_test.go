package y2023

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day08Ghosts = `LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)`

func TestDay08(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"direct", "RL\n\nAAA = (BBB, CCC)\nBBB = (DDD, EEE)\nCCC = (ZZZ, GGG)\nDDD = (DDD, DDD)\nEEE = (EEE, EEE)\nGGG = (GGG, GGG)\nZZZ = (ZZZ, ZZZ)", 2},
		{"repeat", "LLR\n\nAAA = (BBB, BBB)\nBBB = (AAA, ZZZ)\nZZZ = (ZZZ, ZZZ)", 6},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ans, err := solveDay08(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ans.Part1)
		})
	}

	ans, err := solveDay08(day08Ghosts)
	require.NoError(t, err)
	assert.Nil(t, ans.Part1)
	assert.Equal(t, 6, ans.Part2)
}
