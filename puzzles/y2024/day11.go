package y2024

import (
	"strconv"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2024, 11, solveDay11) }

func blinkStone(n int) []int {
	if n == 0 {
		return []int{1}
	}
	if s := strconv.Itoa(n); len(s)%2 == 0 {
		half := len(s) / 2
		left, _ := strconv.Atoi(s[:half])
		right, _ := strconv.Atoi(s[half:])
		return []int{left, right}
	}
	return []int{n * 2024}
}

// pebbles counts stones after blinks. Stones never interact, so equal
// stones are tracked together as one count.
func pebbles(stones []int, blinks int) int {
	counts := make(map[int]int)
	for _, s := range stones {
		counts[s]++
	}
	for range blinks {
		next := make(map[int]int, len(counts))
		for s, c := range counts {
			for _, t := range blinkStone(s) {
				next[t] += c
			}
		}
		counts = next
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}

func solveDay11(input string) (puzzle.Answer, error) {
	stones, err := parse.Fields(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: pebbles(stones, 25), Part2: pebbles(stones, 75)}, nil
}
