package y2021

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
)

const day10Example = `[({(<(())[]>[[{[]{<()<>>
[(()[<>])]({[<{<<[]>>(
{([(<{}[<>[]}>{[]{[(<()>
(((({<>}<{<{<>}{[]{[]{}
[[<[([]))<([[{}[[()]]]
[{[{({}]{}}([{[{{{}}([]
{<[[]]>}<{[{[{[]{()[[[]
[<(<(<(<{}))><([]([]()
<{([([[(<>()){}]>(<<{{
<{([{{}}[<[[[<>{}]]]>[]]`

func TestDay10(t *testing.T) {
	ans, err := solveDay10(day10Example)
	require.NoError(t, err)
	assert.Equal(t, 26397, ans.Part1)
	assert.Equal(t, 288957, ans.Part2)

	_, err = solveDay10("(a)")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
