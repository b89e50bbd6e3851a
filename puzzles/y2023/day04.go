package y2023

import (
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2023, 4, solveDay04) }

func cardMatches(line string) (int, error) {
	_, numbers, err := parse.Cut(line, ":")
	if err != nil {
		return 0, err
	}
	winText, haveText, err := parse.Cut(numbers, "|")
	if err != nil {
		return 0, err
	}
	win, err := parse.Fields(winText)
	if err != nil {
		return 0, err
	}
	have, err := parse.Fields(haveText)
	if err != nil {
		return 0, err
	}
	winning := make(map[int]bool, len(win))
	for _, n := range win {
		winning[n] = true
	}
	matches := 0
	for _, n := range have {
		if winning[n] {
			matches++
		}
	}
	return matches, nil
}

func solveDay04(input string) (puzzle.Answer, error) {
	lines := parse.Lines(input)
	copies := make([]int, len(lines))
	points, total := 0, 0
	for i, line := range lines {
		m, err := cardMatches(line)
		if err != nil {
			return puzzle.Answer{}, err
		}
		if m > 0 {
			points += 1 << (m - 1)
		}
		copies[i]++
		total += copies[i]
		for j := i + 1; j <= i+m && j < len(lines); j++ {
			copies[j] += copies[i]
		}
	}
	return puzzle.Answer{Part1: points, Part2: total}, nil
}
