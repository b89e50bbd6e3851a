package y2015

import (
	"regexp"
	"strconv"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/tsp"
)

func init() { puzzle.Register(2015, 9, solveDay09) }

var routeRx = regexp.MustCompile(`^(\w+) to (\w+) = (\d+)$`)

// nameIndex assigns dense indices to names in first-seen order.
type nameIndex map[string]int

func (ix nameIndex) id(name string) int {
	if i, ok := ix[name]; ok {
		return i
	}
	ix[name] = len(ix)
	return ix[name]
}

// squareTable builds an n×n table from weighted pairs keyed by index.
func squareTable(n int, w map[[2]int]int) [][]int {
	t := make([][]int, n)
	for i := range t {
		t[i] = make([]int, n)
	}
	for k, v := range w {
		t[k[0]][k[1]] = v
	}
	return t
}

func solveDay09(input string) (puzzle.Answer, error) {
	ix := nameIndex{}
	w := map[[2]int]int{}
	for _, line := range parse.Lines(input) {
		m, err := parse.Scan(routeRx, line)
		if err != nil {
			return puzzle.Answer{}, err
		}
		a, b := ix.id(m[0]), ix.id(m[1])
		d, _ := strconv.Atoi(m[2])
		w[[2]int{a, b}], w[[2]int{b, a}] = d, d
	}
	dist := squareTable(len(ix), w)

	short, err := tsp.Solve(dist, tsp.Options{Objective: tsp.Minimize})
	if err != nil {
		return puzzle.Answer{}, err
	}
	long, err := tsp.Solve(dist, tsp.Options{Objective: tsp.Maximize})
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: short.Cost, Part2: long.Cost}, nil
}
