package y2020

import (
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2020, 8, solveDay08) }

type bootInstr struct {
	op  string
	arg int
}

func parseBootCode(input string) ([]bootInstr, error) {
	var prog []bootInstr
	for _, line := range parse.Lines(input) {
		f := strings.Fields(line)
		if len(f) != 2 {
			return nil, puzzle.Malformed("bad instruction %q", line)
		}
		switch f[0] {
		case "acc", "jmp", "nop":
		default:
			return nil, puzzle.Malformed("unknown op %q", f[0])
		}
		n, err := parse.Int(f[1])
		if err != nil {
			return nil, err
		}
		prog = append(prog, bootInstr{op: f[0], arg: n})
	}
	return prog, nil
}

// boot runs prog until an instruction repeats or execution falls off the
// end, returning the accumulator and whether it terminated.
func boot(prog []bootInstr) (acc int, terminated bool) {
	seen := make([]bool, len(prog))
	ip := 0
	for ip >= 0 && ip < len(prog) && !seen[ip] {
		seen[ip] = true
		switch in := prog[ip]; in.op {
		case "acc":
			acc += in.arg
			ip++
		case "jmp":
			ip += in.arg
		default:
			ip++
		}
	}
	return acc, ip == len(prog)
}

// repair flips one jmp/nop so the program terminates.
func repair(prog []bootInstr) (int, bool) {
	swap := map[string]string{"jmp": "nop", "nop": "jmp"}
	for i, in := range prog {
		alt, ok := swap[in.op]
		if !ok {
			continue
		}
		prog[i].op = alt
		acc, done := boot(prog)
		prog[i].op = in.op
		if done {
			return acc, true
		}
	}
	return 0, false
}

func solveDay08(input string) (puzzle.Answer, error) {
	prog, err := parseBootCode(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	loopAcc, _ := boot(prog)
	ans := puzzle.Answer{Part1: loopAcc}
	if acc, ok := repair(prog); ok {
		ans.Part2 = acc
	}
	return ans, nil
}
