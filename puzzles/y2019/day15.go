package y2019

import (
	"github.com/katalvlaran/advent/bfs"
	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/intcode"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2019, 15, solveDay15) }

// Droid status codes.
const (
	hitWall = iota
	moved
	foundOxygen
)

// droid is a repair droid parked on one cell. move reports the status of a
// step and, unless a wall was hit, the droid standing on the new cell.
type droid interface {
	move(d geom.Direction) (status int, next droid, err error)
}

// droidCommand maps directions to the north, south, west, east commands.
var droidCommand = map[geom.Direction]int{geom.Up: 1, geom.Down: 2, geom.Left: 3, geom.Right: 4}

type intcodeDroid struct{ m *intcode.Machine }

func (d intcodeDroid) move(dir geom.Direction) (int, droid, error) {
	m := d.m.Clone()
	out, err := m.RunWith(droidCommand[dir])
	if err != nil {
		return 0, nil, err
	}
	if len(out) != 1 {
		return 0, nil, puzzle.Malformed("droid replied with %d values", len(out))
	}
	return out[0], intcodeDroid{m: m}, nil
}

// exploreShip maps every reachable open cell with a breadth-first walk. Each
// cell keeps the droid that first reached it, so no backtracking is needed.
func exploreShip(start droid) (open map[geom.Location]bool, oxygen geom.Location, found bool, err error) {
	var origin geom.Location
	at := map[geom.Location]droid{origin: start}
	open = map[geom.Location]bool{origin: true}
	neighbors := func(l geom.Location) []geom.Location {
		var out []geom.Location
		for _, dir := range geom.Directions {
			n := l.Step(dir)
			if _, seen := at[n]; seen || err != nil {
				continue
			}
			status, next, merr := at[l].move(dir)
			if merr != nil {
				err = merr
				continue
			}
			if status == hitWall {
				continue
			}
			at[n], open[n] = next, true
			if status == foundOxygen {
				oxygen, found = n, true
			}
			out = append(out, n)
		}
		return out
	}
	if _, serr := bfs.Search([]geom.Location{origin}, neighbors); serr != nil {
		return nil, oxygen, false, serr
	}
	return open, oxygen, found, err
}

func solveDay15(input string) (puzzle.Answer, error) {
	prog, err := intcode.Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	open, oxygen, found, err := exploreShip(intcodeDroid{m: prog.Clone()})
	if err != nil {
		return puzzle.Answer{}, err
	}
	if !found {
		return puzzle.Answer{}, puzzle.ErrNoSolution
	}
	steps, fill, err := oxygenTimes(open, oxygen)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: steps, Part2: fill}, nil
}

// oxygenTimes returns the distance from the origin to the oxygen system and
// the minutes oxygen needs to fill every open cell.
func oxygenTimes(open map[geom.Location]bool, oxygen geom.Location) (int, int, error) {
	nb := func(l geom.Location) []geom.Location {
		var out []geom.Location
		for _, n := range l.Neighbors() {
			if open[n] {
				out = append(out, n)
			}
		}
		return out
	}
	res, err := bfs.Search([]geom.Location{oxygen}, nb)
	if err != nil {
		return 0, 0, err
	}
	fill := 0
	for _, d := range res.Depth {
		fill = max(fill, d)
	}
	return res.Depth[geom.Location{}], fill, nil
}
