package y2022

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day05Example = "    [D]    \n" +
	"[N] [C]    \n" +
	"[Z] [M] [P]\n" +
	" 1   2   3 \n" +
	"\n" +
	"move 1 from 2 to 1\n" +
	"move 3 from 1 to 3\n" +
	"move 2 from 2 to 1\n" +
	"move 1 from 1 to 2\n"

func TestDay05(t *testing.T) {
	for name, input := range map[string]string{
		"raw":     day05Example,
		"trimmed": strings.TrimSpace(day05Example),
	} {
		t.Run(name, func(t *testing.T) {
			ans, err := solveDay05(input)
			require.NoError(t, err)
			assert.Equal(t, "CMZ", ans.Part1)
			assert.Equal(t, "MCD", ans.Part2)
		})
	}
}
