package y2015

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDay10_LookAndSay(t *testing.T) {
	seq := []int{1}
	want := [][]int{{1, 1}, {2, 1}, {1, 2, 1, 1}, {1, 1, 1, 2, 2, 1}, {3, 1, 2, 2, 1, 1}}
	for _, w := range want {
		seq = lookAndSay(seq)
		assert.Equal(t, w, seq)
	}
}
