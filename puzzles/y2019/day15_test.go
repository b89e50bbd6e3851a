package y2019

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/intcode"
)

// mazeDroid walks a drawn map where O marks the oxygen system.
type mazeDroid struct {
	maze []string
	at   geom.Location
}

func (d mazeDroid) move(dir geom.Direction) (int, droid, error) {
	n := d.at.Step(dir)
	switch d.maze[n.Row][n.Col] {
	case '#', ' ':
		return hitWall, nil, nil
	case 'O':
		return foundOxygen, mazeDroid{maze: d.maze, at: n}, nil
	}
	return moved, mazeDroid{maze: d.maze, at: n}, nil
}

func TestExploreShip(t *testing.T) {
	maze := []string{
		" ##   ",
		"#..## ",
		"#.#..#",
		"#.O.# ",
		" ###  ",
	}
	start := mazeDroid{maze: maze, at: geom.L(1, 2)}
	open, oxygen, found, err := exploreShip(start)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, geom.L(2, 0), oxygen)
	assert.Len(t, open, 8)

	steps, fill, err := oxygenTimes(open, oxygen)
	require.NoError(t, err)
	assert.Equal(t, 4, steps)
	assert.Equal(t, 4, fill)
}

func TestIntcodeDroid(t *testing.T) {
	// replies "moved" to the first command and halts
	m, err := intcode.Parse("3,100,104,1,99")
	require.NoError(t, err)
	st, next, err := intcodeDroid{m: m}.move(geom.Up)
	require.NoError(t, err)
	assert.Equal(t, moved, st)
	assert.NotNil(t, next)
	assert.Equal(t, 0, m.Read(100), "move must not disturb the parked droid")
}
