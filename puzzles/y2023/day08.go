package y2023

import (
	"regexp"
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2023, 8, solveDay08) }

var nodeRx = regexp.MustCompile(`^(\w+) = \((\w+), (\w+)\)$`)

type wasteland struct {
	turns string
	next  map[string][2]string
}

func parseWasteland(input string) (*wasteland, error) {
	blocks := parse.Blocks(input)
	if len(blocks) != 2 {
		return nil, puzzle.Malformed("want instructions and a network")
	}
	w := &wasteland{turns: strings.TrimSpace(blocks[0]), next: make(map[string][2]string)}
	if w.turns == "" || strings.Trim(w.turns, "LR") != "" {
		return nil, puzzle.Malformed("bad instructions %q", w.turns)
	}
	for _, line := range parse.Lines(blocks[1]) {
		m, err := parse.Scan(nodeRx, strings.TrimSpace(line))
		if err != nil {
			return nil, err
		}
		w.next[m[0]] = [2]string{m[1], m[2]}
	}
	return w, nil
}

// steps follows the instructions from start until done holds, giving up
// after a generous bound.
func (w *wasteland) steps(start string, done func(string) bool) (int, error) {
	at := start
	limit := len(w.turns) * (len(w.next) + 1)
	for n := 0; n <= limit; n++ {
		if done(at) && n > 0 {
			return n, nil
		}
		pair, ok := w.next[at]
		if !ok {
			return 0, puzzle.Malformed("no node %q", at)
		}
		if w.turns[n%len(w.turns)] == 'L' {
			at = pair[0]
		} else {
			at = pair[1]
		}
	}
	return 0, puzzle.ErrNoSolution
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int { return a / gcd(a, b) * b }

// ghostSteps assumes each ghost's first arrival at a Z node repeats with
// that same period.
func (w *wasteland) ghostSteps() (int, error) {
	total := 1
	ghosts := 0
	for node := range w.next {
		if !strings.HasSuffix(node, "A") {
			continue
		}
		n, err := w.steps(node, func(s string) bool { return strings.HasSuffix(s, "Z") })
		if err != nil {
			return 0, err
		}
		total = lcm(total, n)
		ghosts++
	}
	if ghosts == 0 {
		return 0, puzzle.ErrNoSolution
	}
	return total, nil
}

func solveDay08(input string) (puzzle.Answer, error) {
	w, err := parseWasteland(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	var ans puzzle.Answer
	if _, ok := w.next["AAA"]; ok {
		n, err := w.steps("AAA", func(s string) bool { return s == "ZZZ" })
		if err != nil {
			return puzzle.Answer{}, err
		}
		ans.Part1 = n
	}
	if ans.Part2, err = w.ghostSteps(); err != nil {
		return puzzle.Answer{}, err
	}
	return ans, nil
}
