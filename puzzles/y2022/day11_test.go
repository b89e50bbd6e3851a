package y2022

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day11Example = `Monkey 0:
  Starting items: 79, 98
  Operation: new = old * 19
  Test: divisible by 23
    If true: throw to monkey 2
    If false: throw to monkey 3

Monkey 1:
  Starting items: 54, 65, 75, 74
  Operation: new = old + 6
  Test: divisible by 19
    If true: throw to monkey 2
    If false: throw to monkey 0

Monkey 2:
  Starting items: 79, 60, 97
  Operation: new = old * old
  Test: divisible by 13
    If true: throw to monkey 1
    If false: throw to monkey 3

Monkey 3:
  Starting items: 74
  Operation: new = old + 3
  Test: divisible by 17
    If true: throw to monkey 0
    If false: throw to monkey 1`

func TestDay11(t *testing.T) {
	troop, err := parseMonkeys(day11Example)
	require.NoError(t, err)
	require.Len(t, troop, 4)
	assert.Equal(t, []int{54, 65, 75, 74}, troop[1].items)
	assert.True(t, troop[2].squares)

	ans, err := solveDay11(day11Example)
	require.NoError(t, err)
	assert.Equal(t, 10605, ans.Part1)
	assert.Equal(t, 2713310158, ans.Part2)
	assert.Zero(t, troop[0].inspected)
}
