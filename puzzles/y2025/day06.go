package y2025

import (
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2025, 6, solveDay06) }

type worksheetProblem struct {
	op   byte
	rows []int // numbers read along rows
	cols []int // numbers read down columns
}

func (p worksheetProblem) answer(nums []int) int {
	acc := nums[0]
	for _, n := range nums[1:] {
		if p.op == '*' {
			acc *= n
		} else {
			acc += n
		}
	}
	return acc
}

// parseWorksheet splits the sheet into problems at all-blank columns. The
// first line is right-aligned to the sheet width because input trimming
// may have eaten its leading spaces.
func parseWorksheet(input string) ([]worksheetProblem, error) {
	lines := strings.Split(strings.Trim(strings.ReplaceAll(input, "\r\n", "\n"), "\n"), "\n")
	if len(lines) < 2 {
		return nil, puzzle.Malformed("worksheet needs numbers and operators")
	}
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	lines[0] = strings.Repeat(" ", width-len(lines[0])) + lines[0]
	for i, l := range lines {
		lines[i] = l + strings.Repeat(" ", width-len(l))
	}
	digits, ops := lines[:len(lines)-1], lines[len(lines)-1]

	var out []worksheetProblem
	for start := 0; start < width; {
		end := start
		for end < width && !blankColumn(lines, end) {
			end++
		}
		if end > start {
			p, err := readProblem(digits, ops[start:end], start, end)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		}
		start = end + 1
	}
	return out, nil
}

func blankColumn(lines []string, c int) bool {
	for _, l := range lines {
		if l[c] != ' ' {
			return false
		}
	}
	return true
}

func readProblem(digits []string, opText string, start, end int) (worksheetProblem, error) {
	op := strings.TrimSpace(opText)
	if op != "+" && op != "*" {
		return worksheetProblem{}, puzzle.Malformed("bad operator %q", op)
	}
	p := worksheetProblem{op: op[0]}
	for _, l := range digits {
		if s := strings.TrimSpace(l[start:end]); s != "" {
			n, err := parse.Int(s)
			if err != nil {
				return worksheetProblem{}, err
			}
			p.rows = append(p.rows, n)
		}
	}
	for c := end - 1; c >= start; c-- {
		var col strings.Builder
		for _, l := range digits {
			if l[c] != ' ' {
				col.WriteByte(l[c])
			}
		}
		if col.Len() > 0 {
			n, err := parse.Int(col.String())
			if err != nil {
				return worksheetProblem{}, err
			}
			p.cols = append(p.cols, n)
		}
	}
	if len(p.rows) == 0 || len(p.cols) == 0 {
		return worksheetProblem{}, puzzle.Malformed("problem without numbers")
	}
	return p, nil
}

func solveDay06(input string) (puzzle.Answer, error) {
	problems, err := parseWorksheet(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	byRow, byCol := 0, 0
	for _, p := range problems {
		byRow += p.answer(p.rows)
		byCol += p.answer(p.cols)
	}
	return puzzle.Answer{Part1: byRow, Part2: byCol}, nil
}
