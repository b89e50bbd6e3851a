package y2024

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/geom"
)

const day13Example = `Button A: X+94, Y+34
Button B: X+22, Y+67
Prize: X=8400, Y=5400

Button A: X+26, Y+66
Button B: X+67, Y+21
Prize: X=12748, Y=12176

Button A: X+17, Y+86
Button B: X+84, Y+37
Prize: X=7870, Y=6450

Button A: X+69, Y+23
Button B: X+27, Y+71
Prize: X=18641, Y=10279`

func TestDay13(t *testing.T) {
	claws, err := parseClaws(day13Example)
	require.NoError(t, err)
	require.Len(t, claws, 4)
	assert.Equal(t, clawMachine{geom.P(94, 34), geom.P(22, 67), geom.P(8400, 5400)}, claws[0])

	n, ok := claws[0].tokens()
	assert.True(t, ok)
	assert.Equal(t, 280, n)
	_, ok = claws[1].tokens()
	assert.False(t, ok)

	ans, err := solveDay13(day13Example)
	require.NoError(t, err)
	assert.Equal(t, 480, ans.Part1)
	assert.Equal(t, 875318608908, ans.Part2)
}
