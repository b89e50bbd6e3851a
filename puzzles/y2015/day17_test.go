package y2015

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDay17_Fillings(t *testing.T) {
	all, fewest := fillings([]int{20, 15, 10, 5, 5}, 25)
	assert.Equal(t, 4, all)
	assert.Equal(t, 3, fewest)
}
