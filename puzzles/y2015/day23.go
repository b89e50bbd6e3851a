package y2015

import (
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2015, 23, solveDay23) }

type instr struct {
	op     string
	reg    int // 0 for a, 1 for b
	offset int
}

func parseProgram(input string) ([]instr, error) {
	var prog []instr
	for _, line := range parse.Lines(input) {
		f := strings.Fields(strings.ReplaceAll(line, ",", ""))
		if len(f) < 2 {
			return nil, puzzle.Malformed("bad instruction %q", line)
		}
		in := instr{op: f[0]}
		switch f[0] {
		case "hlf", "tpl", "inc":
			in.reg = strings.Index("ab", f[1])
		case "jmp":
			n, err := parse.Int(f[1])
			if err != nil {
				return nil, err
			}
			in.offset = n
		case "jie", "jio":
			if len(f) != 3 {
				return nil, puzzle.Malformed("bad instruction %q", line)
			}
			in.reg = strings.Index("ab", f[1])
			n, err := parse.Int(f[2])
			if err != nil {
				return nil, err
			}
			in.offset = n
		default:
			return nil, puzzle.Malformed("unknown op %q", f[0])
		}
		if in.reg < 0 {
			return nil, puzzle.Malformed("unknown register in %q", line)
		}
		prog = append(prog, in)
	}
	return prog, nil
}

// execute runs prog until the instruction pointer leaves it.
func execute(prog []instr, a int) [2]int {
	r := [2]int{a, 0}
	for ip := 0; ip >= 0 && ip < len(prog); {
		in := prog[ip]
		step := 1
		switch in.op {
		case "hlf":
			r[in.reg] /= 2
		case "tpl":
			r[in.reg] *= 3
		case "inc":
			r[in.reg]++
		case "jmp":
			step = in.offset
		case "jie":
			if r[in.reg]%2 == 0 {
				step = in.offset
			}
		case "jio":
			if r[in.reg] == 1 {
				step = in.offset
			}
		}
		ip += step
	}
	return r
}

func solveDay23(input string) (puzzle.Answer, error) {
	prog, err := parseProgram(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: execute(prog, 0)[1], Part2: execute(prog, 1)[1]}, nil
}
