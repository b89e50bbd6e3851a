package y2020

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
)

func TestSeatID(t *testing.T) {
	for pass, want := range map[string]int{
		"FBFBBFFRLR": 357,
		"BFFFBBFRRR": 567,
		"FFFBBBFRRR": 119,
		"BBFFBBFRLL": 820,
	} {
		got, err := seatID(pass)
		require.NoError(t, err)
		assert.Equal(t, want, got, pass)
	}
	_, err := seatID("FBFBBFFRLX")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}

func TestDay05(t *testing.T) {
	// 119, 120 and 122: 121 is the empty seat
	ans, err := solveDay05("FFFBBBFRRR\nFFFBBBBLLL\nFFFBBBBLRL")
	require.NoError(t, err)
	assert.Equal(t, 122, ans.Part1)
	assert.Equal(t, 121, ans.Part2)
}
