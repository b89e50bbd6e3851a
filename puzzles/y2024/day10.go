package y2024

import (
	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2024, 10, solveDay10) }

// trailRatings returns, for every cell, how many distinct hiking trails
// climb from it to a height 9, and the set of summits it reaches.
func trailRatings(g *grid.Grid[int]) (ratings map[geom.Location]int, summits map[geom.Location]map[geom.Location]bool) {
	ratings = make(map[geom.Location]int)
	summits = make(map[geom.Location]map[geom.Location]bool)
	for h := 9; h >= 0; h-- {
		for l, v := range g.All() {
			if v != h {
				continue
			}
			summits[l] = make(map[geom.Location]bool)
			if h == 9 {
				ratings[l] = 1
				summits[l][l] = true
				continue
			}
			for n := range g.Neighbors(l, grid.Conn4) {
				if g.At(n) == h+1 {
					ratings[l] += ratings[n]
					for s := range summits[n] {
						summits[l][s] = true
					}
				}
			}
		}
	}
	return ratings, summits
}

func solveDay10(input string) (puzzle.Answer, error) {
	g, err := grid.Digits(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	ratings, summits := trailRatings(g)
	score, rating := 0, 0
	for l, v := range g.All() {
		if v == 0 {
			score += len(summits[l])
			rating += ratings[l]
		}
	}
	return puzzle.Answer{Part1: score, Part2: rating}, nil
}
