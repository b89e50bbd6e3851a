package y2016

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
)

func TestDay04(t *testing.T) {
	in := "aaaaa-bbb-z-y-x-123[abxyz]\na-b-c-d-e-f-g-h-987[abcde]\nnot-a-real-room-404[oarel]\ntotally-real-room-200[decoy]"
	ans, err := solveDay04(in)
	require.NoError(t, err)
	assert.Equal(t, 1514, ans.Part1)
	assert.Nil(t, ans.Part2)

	_, err = solveDay04("no-sector[abcde]")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}

func TestRoomDecrypt(t *testing.T) {
	r := room{name: "qzmt-zixmtkozy-ivhz", sector: 343}
	assert.Equal(t, "very encrypted name", r.decrypt())

	ans, err := solveDay04("ghkmaihex-hucxvm-lmhktzx-267[hmxka]")
	require.NoError(t, err)
	assert.Equal(t, 267, ans.Part2)
}
