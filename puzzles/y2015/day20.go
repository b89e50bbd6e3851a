package y2015

import (
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2015, 20, solveDay20) }

// lowestHouse sieves presents per house. Elf e leaves e*per presents at
// houses e, 2e, 3e... visiting at most limit houses (0 means unlimited).
func lowestHouse(target, per, limit int) int {
	n := target/per + 1
	presents := make([]int, n+1)
	for e := 1; e <= n; e++ {
		for h, visits := e, 0; h <= n && (limit == 0 || visits < limit); h, visits = h+e, visits+1 {
			presents[h] += e * per
		}
	}
	for h := 1; h <= n; h++ {
		if presents[h] >= target {
			return h
		}
	}
	return n
}

func solveDay20(input string) (puzzle.Answer, error) {
	target, err := parse.Int(strings.TrimSpace(input))
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: lowestHouse(target, 10, 0), Part2: lowestHouse(target, 11, 50)}, nil
}
