package y2021

import (
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2021, 6, solveDay06) }

// lanternfish counts the school after days, tracking how many fish share
// each timer value.
func lanternfish(timers []int, days int) int {
	var byTimer [9]int
	for _, t := range timers {
		byTimer[t]++
	}
	for range days {
		spawning := byTimer[0]
		copy(byTimer[:], byTimer[1:])
		byTimer[6] += spawning
		byTimer[8] = spawning
	}
	total := 0
	for _, n := range byTimer {
		total += n
	}
	return total
}

func solveDay06(input string) (puzzle.Answer, error) {
	timers, err := parse.Split(input, ",")
	if err != nil {
		return puzzle.Answer{}, err
	}
	for _, t := range timers {
		if t < 0 || t > 8 {
			return puzzle.Answer{}, puzzle.Malformed("timer %d out of range", t)
		}
	}
	return puzzle.Answer{Part1: lanternfish(timers, 80), Part2: lanternfish(timers, 256)}, nil
}
