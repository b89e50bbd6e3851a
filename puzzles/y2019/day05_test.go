package y2019

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/intcode"
)

const compareTo8 = "3,21,1008,21,8,20,1005,20,22,107,8,21,20,1006,20,31," +
	"1106,0,36,98,0,0,1002,21,125,20,4,20,1105,1,46,104," +
	"999,1105,1,46,1101,1000,1,20,4,20,1105,1,46,98,99"

func TestDiagnostic(t *testing.T) {
	m, err := intcode.Parse(compareTo8)
	require.NoError(t, err)
	for in, want := range map[int]int{7: 999, 8: 1000, 9: 1001} {
		got, err := diagnostic(m, in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}

	eq, err := intcode.Parse("3,9,8,9,10,9,4,9,99,-1,8")
	require.NoError(t, err)
	got, err := diagnostic(eq, 8)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}
