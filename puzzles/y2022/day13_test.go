package y2022

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day13Example = `[1,1,3,1,1]
[1,1,5,1,1]

[[1],[2,3,4]]
[[1],4]

[9]
[[8,7,6]]

[[4,4],4,4]
[[4,4],4,4,4]

[7,7,7,7]
[7,7,7]

[]
[3]

[[[]]]
[[]]

[1,[2,[3,[4,[5,6,7]]]],8,9]
[1,[2,[3,[4,[5,6,0]]]],8,9]`

func TestComparePackets(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"[1,1,3,1,1]", "[1,1,5,1,1]", -1},
		{"[[1],[2,3,4]]", "[[1],4]", -1},
		{"[9]", "[[8,7,6]]", 1},
		{"[[[]]]", "[[]]", 1},
		{"[[2]]", "[2]", 0},
	}
	for _, tc := range tests {
		a, err := parsePacket(tc.a)
		require.NoError(t, err)
		b, err := parsePacket(tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, comparePackets(a, b), "%s vs %s", tc.a, tc.b)
	}
}

func TestDay13(t *testing.T) {
	ans, err := solveDay13(day13Example)
	require.NoError(t, err)
	assert.Equal(t, 13, ans.Part1)
	assert.Equal(t, 140, ans.Part2)
}
