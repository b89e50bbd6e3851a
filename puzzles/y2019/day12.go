package y2019

import (
	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2019, 12, solveDay12) }

// moonAxis is the position and velocity of every moon along one axis. The
// axes never interact, so each is simulated on its own.
type moonAxis struct {
	pos, vel []int
}

func (a *moonAxis) step() {
	for i := range a.pos {
		for j := i + 1; j < len(a.pos); j++ {
			switch {
			case a.pos[i] < a.pos[j]:
				a.vel[i]++
				a.vel[j]--
			case a.pos[i] > a.pos[j]:
				a.vel[i]--
				a.vel[j]++
			}
		}
	}
	for i := range a.pos {
		a.pos[i] += a.vel[i]
	}
}

func (a *moonAxis) clone() moonAxis {
	return moonAxis{pos: append([]int(nil), a.pos...), vel: append([]int(nil), a.vel...)}
}

func (a *moonAxis) equal(b moonAxis) bool {
	for i := range a.pos {
		if a.pos[i] != b.pos[i] || a.vel[i] != b.vel[i] {
			return false
		}
	}
	return true
}

func parseMoons(input string) ([3]moonAxis, error) {
	var axes [3]moonAxis
	for _, line := range parse.Lines(input) {
		n, err := parse.Ints(line)
		if err != nil {
			return axes, err
		}
		if len(n) != 3 {
			return axes, puzzle.Malformed("bad moon %q", line)
		}
		for k := range axes {
			axes[k].pos = append(axes[k].pos, n[k])
			axes[k].vel = append(axes[k].vel, 0)
		}
	}
	if len(axes[0].pos) == 0 {
		return axes, puzzle.Malformed("no moons")
	}
	return axes, nil
}

func totalEnergy(axes [3]moonAxis, steps int) int {
	for k := range axes {
		axes[k] = axes[k].clone()
		for range steps {
			axes[k].step()
		}
	}
	sum := 0
	for i := range axes[0].pos {
		pot, kin := 0, 0
		for k := range axes {
			pot += geom.Abs(axes[k].pos[i])
			kin += geom.Abs(axes[k].vel[i])
		}
		sum += pot * kin
	}
	return sum
}

// period finds when every axis is back at its initial state at once.
// Motion is reversible, so each axis returns to its start rather than to
// some later state.
func period(axes [3]moonAxis) int {
	p := 1
	for _, a := range axes {
		cur := a.clone()
		n := 0
		for {
			cur.step()
			n++
			if cur.equal(a) {
				break
			}
		}
		p = lcm(p, n)
	}
	return p
}

func solveDay12(input string) (puzzle.Answer, error) {
	axes, err := parseMoons(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: totalEnergy(axes, 1000), Part2: period(axes)}, nil
}
