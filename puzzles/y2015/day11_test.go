package y2015

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDay11_Rules(t *testing.T) {
	assert.False(t, validPassword([]byte("hijklmmn")))
	assert.False(t, validPassword([]byte("abbceffg")))
	assert.False(t, validPassword([]byte("abbcegjk")))
	assert.True(t, validPassword([]byte("abcdffaa")))

	b := []byte("xz")
	increment(b)
	assert.Equal(t, "ya", string(b))
}

func TestDay11_Next(t *testing.T) {
	assert.Equal(t, "abcdffaa", nextPassword("abcdefgh"))
	assert.Equal(t, "ghjaabcc", nextPassword("ghijklmn"))
}
