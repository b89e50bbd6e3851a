package y2020

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
)

func TestDockV1(t *testing.T) {
	ans, err := solveDay14("mask = XXXXXXXXXXXXXXXXXXXXXXXXXXXXX1XXXX0X\nmem[8] = 11\nmem[7] = 101\nmem[8] = 0")
	require.NoError(t, err)
	assert.Equal(t, 165, ans.Part1)
	assert.Nil(t, ans.Part2, "34 floating bits are refused")
}

func TestDockV2(t *testing.T) {
	ops, err := parseDocking("mask = 000000000000000000000000000000X1001X\nmem[42] = 100\nmask = 00000000000000000000000000000000X0XX\nmem[26] = 1")
	require.NoError(t, err)
	got, err := dockV2(ops)
	require.NoError(t, err)
	assert.Equal(t, 208, got)
}

func TestParseDocking_Errors(t *testing.T) {
	_, err := parseDocking("mem[1] = 2")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	_, err = parseDocking("mask = 01\nmem[1] = 2")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
