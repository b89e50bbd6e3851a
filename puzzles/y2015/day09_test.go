package y2015

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay09(t *testing.T) {
	ans, err := solveDay09(`London to Dublin = 464
London to Belfast = 518
Dublin to Belfast = 141`)
	require.NoError(t, err)
	assert.Equal(t, 605, ans.Part1)
	assert.Equal(t, 982, ans.Part2)
}
