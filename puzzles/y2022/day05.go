package y2022

import (
	"regexp"
	"slices"
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2022, 5, solveDay05) }

var craneMoveRx = regexp.MustCompile(`^move (\d+) from (\d+) to (\d+)$`)

type craneMove struct{ count, from, to int }

// parseCrates reads the drawing into stacks with the top crate last. The
// first line may have lost its indentation to input trimming, so it is
// right-aligned to the widest line.
func parseCrates(drawing string) ([][]byte, error) {
	lines := strings.Split(strings.TrimRight(drawing, " \n"), "\n")
	if len(lines) < 2 {
		return nil, puzzle.Malformed("crate drawing has no labels")
	}
	labels := strings.Fields(lines[len(lines)-1])
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	lines[0] = strings.Repeat(" ", width-len(lines[0])) + lines[0]

	stacks := make([][]byte, len(labels))
	for i := len(lines) - 2; i >= 0; i-- {
		for s := range stacks {
			col := 4*s + 1
			if col < len(lines[i]) && lines[i][col] != ' ' {
				stacks[s] = append(stacks[s], lines[i][col])
			}
		}
	}
	return stacks, nil
}

func parseCraneMoves(text string, stacks int) ([]craneMove, error) {
	var out []craneMove
	for _, line := range parse.Lines(text) {
		m, err := parse.Scan(craneMoveRx, line)
		if err != nil {
			return nil, err
		}
		mv := craneMove{}
		for i, dst := range []*int{&mv.count, &mv.from, &mv.to} {
			if *dst, err = parse.Int(m[i]); err != nil {
				return nil, err
			}
		}
		if mv.from < 1 || mv.from > stacks || mv.to < 1 || mv.to > stacks {
			return nil, puzzle.Malformed("move references missing stack: %q", line)
		}
		mv.from--
		mv.to--
		out = append(out, mv)
	}
	return out, nil
}

// operateCrane applies moves to a copy of stacks and returns the top
// crates. The 9001 model lifts a whole group at once.
func operateCrane(stacks [][]byte, moves []craneMove, model9001 bool) (string, error) {
	st := make([][]byte, len(stacks))
	for i, s := range stacks {
		st[i] = slices.Clone(s)
	}
	for _, mv := range moves {
		src := st[mv.from]
		if mv.count > len(src) {
			return "", puzzle.Malformed("stack %d has only %d crates", mv.from+1, len(src))
		}
		lifted := slices.Clone(src[len(src)-mv.count:])
		if !model9001 {
			slices.Reverse(lifted)
		}
		st[mv.from] = src[:len(src)-mv.count]
		st[mv.to] = append(st[mv.to], lifted...)
	}
	var top strings.Builder
	for _, s := range st {
		if len(s) > 0 {
			top.WriteByte(s[len(s)-1])
		}
	}
	return top.String(), nil
}

func solveDay05(input string) (puzzle.Answer, error) {
	input = strings.ReplaceAll(strings.TrimLeft(input, "\n"), "\r\n", "\n")
	drawing, moveText, err := parse.Cut(input, "\n\n")
	if err != nil {
		return puzzle.Answer{}, err
	}
	stacks, err := parseCrates(drawing)
	if err != nil {
		return puzzle.Answer{}, err
	}
	moves, err := parseCraneMoves(moveText, len(stacks))
	if err != nil {
		return puzzle.Answer{}, err
	}
	var ans puzzle.Answer
	if ans.Part1, err = operateCrane(stacks, moves, false); err != nil {
		return puzzle.Answer{}, err
	}
	if ans.Part2, err = operateCrane(stacks, moves, true); err != nil {
		return puzzle.Answer{}, err
	}
	return ans, nil
}
