package y2019

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/intcode"
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func TestRelativeBasePrograms(t *testing.T) {
	const quine = "109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99"
	m, err := intcode.Parse(quine)
	require.NoError(t, err)
	out, err := m.RunWith()
	require.NoError(t, err)
	want, err := parse.Split(quine, ",")
	require.NoError(t, err)
	assert.Equal(t, want, out)

	m, err = intcode.Parse("104,1125899906842624,99")
	require.NoError(t, err)
	got, err := boost(m, 1)
	require.NoError(t, err)
	assert.Equal(t, 1125899906842624, got)

	m, err = intcode.Parse("1102,34915192,34915192,7,4,7,99,0")
	require.NoError(t, err)
	got, err = boost(m, 1)
	require.NoError(t, err)
	assert.Equal(t, 1219070632396864, got)
}

func TestBoost_Faulty(t *testing.T) {
	m, err := intcode.Parse("104,203,104,0,99")
	require.NoError(t, err)
	_, err = boost(m, 1)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
