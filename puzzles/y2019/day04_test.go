package y2019

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPassword(t *testing.T) {
	assert.True(t, validPassword(111111, false))
	assert.False(t, validPassword(223450, false))
	assert.False(t, validPassword(123789, false))

	assert.True(t, validPassword(112233, true))
	assert.False(t, validPassword(123444, true))
	assert.True(t, validPassword(111122, true))
}

func TestDay04(t *testing.T) {
	ans, err := solveDay04("111110-111123")
	if assert.NoError(t, err) {
		// 111111, 111112 ... 111119, then 111122 and 111123
		assert.Equal(t, 11, ans.Part1)
		assert.Equal(t, 1, ans.Part2)
	}
}
