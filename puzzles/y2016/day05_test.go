package y2016

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoorPasswords(t *testing.T) {
	if testing.Short() {
		t.Skip("hashes tens of millions of keys")
	}
	p1, p2 := doorPasswords("abc")
	assert.Equal(t, "18f47a30", p1)
	assert.Equal(t, "05ace8e3", p2)
}
