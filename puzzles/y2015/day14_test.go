package y2015

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay14_Race(t *testing.T) {
	herd, err := parseReindeer(`Comet can fly 14 km/s for 10 seconds, but then must rest for 127 seconds.
Dancer can fly 16 km/s for 11 seconds, but then must rest for 162 seconds.`)
	require.NoError(t, err)
	assert.Equal(t, 1120, herd[0].distance(1000))
	assert.Equal(t, 1056, herd[1].distance(1000))

	d, p := race(herd, 1000)
	assert.Equal(t, 1120, d)
	assert.Equal(t, 689, p)
}
