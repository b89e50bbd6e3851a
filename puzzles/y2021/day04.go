package y2021

import (
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2021, 4, solveDay04) }

type bingoCard struct {
	nums   [25]int
	marked [25]bool
	won    bool
}

func (c *bingoCard) mark(n int) bool {
	for i, v := range c.nums {
		if v == n {
			c.marked[i] = true
			r, col := i/5, i%5
			row, column := true, true
			for k := range 5 {
				row = row && c.marked[r*5+k]
				column = column && c.marked[k*5+col]
			}
			return row || column
		}
	}
	return false
}

func (c *bingoCard) unmarkedSum() int {
	sum := 0
	for i, v := range c.nums {
		if !c.marked[i] {
			sum += v
		}
	}
	return sum
}

func parseBingo(input string) ([]int, []*bingoCard, error) {
	blocks := parse.Blocks(input)
	if len(blocks) < 2 {
		return nil, nil, puzzle.Malformed("no bingo cards")
	}
	draws, err := parse.Split(blocks[0], ",")
	if err != nil {
		return nil, nil, err
	}
	var cards []*bingoCard
	for _, b := range blocks[1:] {
		nums, err := parse.Fields(b)
		if err != nil {
			return nil, nil, err
		}
		if len(nums) != 25 {
			return nil, nil, puzzle.Malformed("card has %d numbers", len(nums))
		}
		c := &bingoCard{}
		copy(c.nums[:], nums)
		cards = append(cards, c)
	}
	return draws, cards, nil
}

func solveDay04(input string) (puzzle.Answer, error) {
	draws, cards, err := parseBingo(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	var scores []int
	for _, n := range draws {
		for _, c := range cards {
			if !c.won && c.mark(n) {
				c.won = true
				scores = append(scores, n*c.unmarkedSum())
			}
		}
	}
	if len(scores) == 0 {
		return puzzle.Answer{}, puzzle.ErrNoSolution
	}
	return puzzle.Answer{Part1: scores[0], Part2: scores[len(scores)-1]}, nil
}
