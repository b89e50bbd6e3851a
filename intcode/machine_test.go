package intcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/intcode"
	"github.com/katalvlaran/advent/puzzle"
)

func run(t *testing.T, program string, input ...int) []int {
	t.Helper()
	m, err := intcode.Parse(program)
	require.NoError(t, err)
	out, err := m.RunWith(input...)
	require.NoError(t, err)
	return out
}

func TestRun_Arithmetic(t *testing.T) {
	tests := []struct {
		program string
		addr    int
		want    int
	}{
		{"1,9,10,3,2,3,11,0,99,30,40,50", 0, 3500},
		{"1,0,0,0,99", 0, 2},
		{"2,4,4,5,99,0", 5, 9801},
		{"1,1,1,4,99,5,6,0,99", 0, 30},
		{"1002,4,3,4,33", 4, 99},
	}
	for _, tc := range tests {
		t.Run(tc.program, func(t *testing.T) {
			m, err := intcode.Parse(tc.program)
			require.NoError(t, err)
			st, err := m.Run()
			require.NoError(t, err)
			assert.Equal(t, intcode.Halted, st)
			assert.Equal(t, tc.want, m.Read(tc.addr))
		})
	}
}

func TestRun_Comparisons(t *testing.T) {
	const cmp8 = "3,21,1008,21,8,20,1005,20,22,107,8,21,20,1006,20,31,1106,0,36,98,0,0,1002,21,125,20,4,20,1105,1,46,104,999,1105,1,46,1101,1000,1,20,4,20,1105,1,46,98,99"
	assert.Equal(t, []int{999}, run(t, cmp8, 7))
	assert.Equal(t, []int{1000}, run(t, cmp8, 8))
	assert.Equal(t, []int{1001}, run(t, cmp8, 9))

	assert.Equal(t, []int{1}, run(t, "3,9,8,9,10,9,4,9,99,-1,8", 8))
	assert.Equal(t, []int{0}, run(t, "3,3,1107,-1,8,3,4,3,99", 9))
	assert.Equal(t, []int{0}, run(t, "3,12,6,12,15,1,13,14,13,4,13,99,-1,0,1,9", 0))
}

func TestRun_RelativeBase(t *testing.T) {
	quine := "109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99"
	assert.Equal(t, []int{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99}, run(t, quine))
	assert.Equal(t, []int{1219070632396864}, run(t, "1102,34915192,34915192,7,4,7,99,0"))
	assert.Equal(t, []int{1125899906842624}, run(t, "104,1125899906842624,99"))
}

func TestRun_PausesForInput(t *testing.T) {
	m, err := intcode.Parse("3,0,4,0,3,0,4,0,99")
	require.NoError(t, err)

	st, err := m.Run()
	require.NoError(t, err)
	assert.Equal(t, intcode.NeedsInput, st)

	m.Input(5)
	st, err = m.Run()
	require.NoError(t, err)
	assert.Equal(t, intcode.NeedsInput, st)
	assert.Equal(t, []int{5}, m.Output())

	c := m.Clone()
	out, err := m.RunWith(6)
	require.NoError(t, err)
	assert.Equal(t, []int{6}, out)
	assert.Equal(t, intcode.Halted, m.State())
	assert.Equal(t, intcode.NeedsInput, c.State())

	_, err = m.Run()
	assert.ErrorIs(t, err, intcode.ErrHalted)
}

func TestRun_Errors(t *testing.T) {
	_, err := intcode.Parse("1,2,x")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	m, err := intcode.Parse("42")
	require.NoError(t, err)
	_, err = m.Run()
	assert.ErrorIs(t, err, intcode.ErrBadOpcode)

	m, err = intcode.Parse("11101,1,1,1,99")
	require.NoError(t, err)
	_, err = m.Run()
	assert.ErrorIs(t, err, intcode.ErrBadMode)
}
