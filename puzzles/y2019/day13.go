package y2019

import (
	"cmp"

	"github.com/katalvlaran/advent/intcode"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2019, 13, solveDay13) }

const (
	tileEmpty = iota
	tileWall
	tileBlock
	tilePaddle
	tileBall
)

// arcade tracks the screen state drawn by the game's output triples.
type arcade struct {
	blocks         map[[2]int]bool
	score          int
	ballX, paddleX int
}

func (a *arcade) draw(out []int) error {
	if len(out)%3 != 0 {
		return puzzle.Malformed("arcade output of %d values is not whole tiles", len(out))
	}
	for i := 0; i < len(out); i += 3 {
		x, y, v := out[i], out[i+1], out[i+2]
		if x == -1 && y == 0 {
			a.score = v
			continue
		}
		at := [2]int{x, y}
		delete(a.blocks, at)
		switch v {
		case tileBlock:
			a.blocks[at] = true
		case tilePaddle:
			a.paddleX = x
		case tileBall:
			a.ballX = x
		}
	}
	return nil
}

// play inserts quarters and keeps the paddle under the ball until the game
// halts, returning the final score.
func play(prog *intcode.Machine) (int, error) {
	m := prog.Clone()
	if err := m.Write(0, 2); err != nil {
		return 0, err
	}
	a := &arcade{blocks: map[[2]int]bool{}}
	for {
		st, err := m.Run()
		if err != nil {
			return 0, err
		}
		if err := a.draw(m.Output()); err != nil {
			return 0, err
		}
		if st == intcode.Halted {
			return a.score, nil
		}
		m.Input(cmp.Compare(a.ballX, a.paddleX))
	}
}

func solveDay13(input string) (puzzle.Answer, error) {
	prog, err := intcode.Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	out, err := prog.Clone().RunWith()
	if err != nil {
		return puzzle.Answer{}, err
	}
	a := &arcade{blocks: map[[2]int]bool{}}
	if err := a.draw(out); err != nil {
		return puzzle.Answer{}, err
	}
	score, err := play(prog)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: len(a.blocks), Part2: score}, nil
}
