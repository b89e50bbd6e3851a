package y2022

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkerEnd(t *testing.T) {
	tests := []struct {
		in          string
		four, fourt int
	}{
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", 7, 19},
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", 5, 23},
		{"nppdvjthqldpwncqszvftbrmjlhg", 6, 23},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", 10, 29},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", 11, 26},
	}
	for _, tc := range tests {
		n, ok := markerEnd(tc.in, 4)
		assert.True(t, ok)
		assert.Equal(t, tc.four, n, tc.in)
		n, ok = markerEnd(tc.in, 14)
		assert.True(t, ok)
		assert.Equal(t, tc.fourt, n, tc.in)
	}
	n, ok := markerEnd("abcd", 4)
	assert.True(t, ok)
	assert.Equal(t, 4, n)
	_, ok = markerEnd("aaaa", 2)
	assert.False(t, ok)
}
