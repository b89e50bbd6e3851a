package y2025

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day06Example = "123 328  51 64 \n" +
	" 45 64  387 23 \n" +
	"  6 98  215 314\n" +
	"*   +   *   +  "

func TestWorksheet(t *testing.T) {
	problems, err := parseWorksheet(day06Example)
	require.NoError(t, err)
	require.Len(t, problems, 4)
	assert.Equal(t, []int{123, 45, 6}, problems[0].rows)
	assert.Equal(t, []int{356, 24, 1}, problems[0].cols)
	assert.Equal(t, []int{4, 431, 623}, problems[3].cols)
}

func TestDay06(t *testing.T) {
	for name, input := range map[string]string{
		"raw":     day06Example,
		"trimmed": strings.TrimSpace(day06Example),
	} {
		t.Run(name, func(t *testing.T) {
			ans, err := solveDay06(input)
			require.NoError(t, err)
			assert.Equal(t, 4277556, ans.Part1)
			assert.Equal(t, 3263827, ans.Part2)
		})
	}
}
