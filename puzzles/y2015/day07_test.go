package y2015

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day07Example = `123 -> x
456 -> y
x AND y -> d
x OR y -> e
x LSHIFT 2 -> f
y RSHIFT 2 -> g
NOT x -> h
NOT y -> i`

func TestDay07_Signals(t *testing.T) {
	c, err := parseCircuit(day07Example)
	require.NoError(t, err)
	want := map[string]uint16{"d": 72, "e": 507, "f": 492, "g": 114, "h": 65412, "i": 65079, "x": 123, "y": 456}
	for wire, v := range want {
		got, err := c.signal(wire)
		require.NoError(t, err)
		assert.Equal(t, v, got, wire)
	}

	_, err = c.signal("zz")
	assert.Error(t, err)
}

func TestDay07_OverrideB(t *testing.T) {
	ans, err := solveDay07("3 -> b\nb LSHIFT 1 -> a")
	require.NoError(t, err)
	assert.Equal(t, 6, ans.Part1)
	assert.Equal(t, 12, ans.Part2)
}
