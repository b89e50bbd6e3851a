package y2015

import (
	"regexp"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2015, 15, solveDay15) }

var ingredientRx = regexp.MustCompile(`^\w+: capacity (-?\d+), durability (-?\d+), flavor (-?\d+), texture (-?\d+), calories (-?\d+)$`)

// ingredient holds capacity, durability, flavor, texture and calories.
type ingredient [5]int

func parseIngredients(input string) ([]ingredient, error) {
	var out []ingredient
	for _, line := range parse.Lines(input) {
		if _, err := parse.Scan(ingredientRx, line); err != nil {
			return nil, err
		}
		n, err := parse.Ints(line)
		if err != nil {
			return nil, err
		}
		var ing ingredient
		copy(ing[:], n)
		out = append(out, ing)
	}
	if len(out) == 0 {
		return nil, puzzle.Malformed("no ingredients")
	}
	return out, nil
}

// bestCookie tries every split of 100 teaspoons and returns the best score,
// and the best score among recipes of exactly 500 calories.
func bestCookie(ings []ingredient) (best, diet int) {
	amounts := make([]int, len(ings))
	var rec func(i, left int)
	rec = func(i, left int) {
		if i == len(ings)-1 {
			amounts[i] = left
			var tot ingredient
			for k, ing := range ings {
				for p := range tot {
					tot[p] += amounts[k] * ing[p]
				}
			}
			score := 1
			for p := 0; p < 4; p++ {
				score *= max(0, tot[p])
			}
			best = max(best, score)
			if tot[4] == 500 {
				diet = max(diet, score)
			}
			return
		}
		for a := 0; a <= left; a++ {
			amounts[i] = a
			rec(i+1, left-a)
		}
	}
	rec(0, 100)
	return best, diet
}

func solveDay15(input string) (puzzle.Answer, error) {
	ings, err := parseIngredients(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	best, diet := bestCookie(ings)
	return puzzle.Answer{Part1: best, Part2: diet}, nil
}
