package y2023

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandKind(t *testing.T) {
	tests := []struct {
		cards       string
		plain, joke int
	}{
		{"32T3K", 1, 1},
		{"KK677", 2, 2},
		{"KTJJT", 2, 5},
		{"T55J5", 3, 5},
		{"JJJJJ", 6, 6},
		{"23456", 0, 0},
		{"2345J", 0, 1},
		{"AAKKK", 4, 4},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.plain, handKind(tc.cards, false), tc.cards)
		assert.Equal(t, tc.joke, handKind(tc.cards, true), tc.cards)
	}
}

func TestDay07(t *testing.T) {
	ans, err := solveDay07("32T3K 765\nT55J5 684\nKK677 28\nKTJJT 220\nQQQJA 483")
	require.NoError(t, err)
	assert.Equal(t, 6440, ans.Part1)
	assert.Equal(t, 5905, ans.Part2)
}
