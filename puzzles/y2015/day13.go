package y2015

import (
	"regexp"
	"strconv"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/tsp"
)

func init() { puzzle.Register(2015, 13, solveDay13) }

var seatingRx = regexp.MustCompile(`^(\w+) would (gain|lose) (\d+) happiness units? by sitting next to (\w+)\.$`)

func solveDay13(input string) (puzzle.Answer, error) {
	ix := nameIndex{}
	w := map[[2]int]int{}
	for _, line := range parse.Lines(input) {
		m, err := parse.Scan(seatingRx, line)
		if err != nil {
			return puzzle.Answer{}, err
		}
		a, b := ix.id(m[0]), ix.id(m[3])
		n, _ := strconv.Atoi(m[2])
		if m[1] == "lose" {
			n = -n
		}
		// seating is symmetric: both neighbours' feelings count on one edge
		w[[2]int{a, b}] += n
		w[[2]int{b, a}] += n
	}

	best := func(n int) (int, error) {
		res, err := tsp.Solve(squareTable(n, w), tsp.Options{Objective: tsp.Maximize, Closed: true})
		return res.Cost, err
	}
	p1, err := best(len(ix))
	if err != nil {
		return puzzle.Answer{}, err
	}
	// adding an indifferent guest is an extra all-zero row and column
	p2, err := best(len(ix) + 1)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: p1, Part2: p2}, nil
}
