package y2024

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPebbles(t *testing.T) {
	assert.Equal(t, []int{1}, blinkStone(0))
	assert.Equal(t, []int{10, 0}, blinkStone(1000))
	assert.Equal(t, []int{2024}, blinkStone(1))

	assert.Equal(t, 7, pebbles([]int{0, 1, 10, 99, 999}, 1))
	assert.Equal(t, 22, pebbles([]int{125, 17}, 6))
	assert.Equal(t, 55312, pebbles([]int{125, 17}, 25))
}
