package y2024

import (
	"regexp"
	"strconv"

	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2024, 3, solveDay03) }

var memoryRx = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

// mulSums adds every mul(a,b) in memory, and separately only those not
// switched off by a preceding don't().
func mulSums(memory string) (all, enabled int) {
	on := true
	for _, m := range memoryRx.FindAllStringSubmatch(memory, -1) {
		switch m[0] {
		case "do()":
			on = true
		case "don't()":
			on = false
		default:
			a, _ := strconv.Atoi(m[1])
			b, _ := strconv.Atoi(m[2])
			all += a * b
			if on {
				enabled += a * b
			}
		}
	}
	return all, enabled
}

func solveDay03(input string) (puzzle.Answer, error) {
	all, enabled := mulSums(input)
	return puzzle.Answer{Part1: all, Part2: enabled}, nil
}
