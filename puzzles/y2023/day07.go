package y2023

import (
	"cmp"
	"slices"
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2023, 7, solveDay07) }

const (
	plainOrder = "23456789TJQKA"
	jokerOrder = "J23456789TQKA"
)

type camelHand struct {
	cards string
	bid   int
}

// handKind ranks a hand from 0 (high card) to 6 (five of a kind). With
// jokers, every J joins the largest group of other cards.
func handKind(cards string, jokers bool) int {
	counts := make(map[rune]int)
	wild := 0
	for _, c := range cards {
		if jokers && c == 'J' {
			wild++
			continue
		}
		counts[c]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.Sort(groups)
	slices.Reverse(groups)
	if len(groups) == 0 {
		groups = append(groups, 0)
	}
	groups[0] += wild
	second := 0
	if len(groups) > 1 {
		second = groups[1]
	}
	switch {
	case groups[0] == 5:
		return 6
	case groups[0] == 4:
		return 5
	case groups[0] == 3 && second == 2:
		return 4
	case groups[0] == 3:
		return 3
	case groups[0] == 2 && second == 2:
		return 2
	case groups[0] == 2:
		return 1
	}
	return 0
}

func winnings(hands []camelHand, jokers bool) int {
	order := plainOrder
	if jokers {
		order = jokerOrder
	}
	sorted := slices.Clone(hands)
	slices.SortFunc(sorted, func(a, b camelHand) int {
		if c := cmp.Compare(handKind(a.cards, jokers), handKind(b.cards, jokers)); c != 0 {
			return c
		}
		for i := range len(a.cards) {
			if c := cmp.Compare(strings.IndexByte(order, a.cards[i]), strings.IndexByte(order, b.cards[i])); c != 0 {
				return c
			}
		}
		return 0
	})
	total := 0
	for i, h := range sorted {
		total += (i + 1) * h.bid
	}
	return total
}

func solveDay07(input string) (puzzle.Answer, error) {
	var hands []camelHand
	for _, line := range parse.Lines(input) {
		f := strings.Fields(line)
		if len(f) != 2 || len(f[0]) != 5 || strings.Trim(f[0], plainOrder) != "" {
			return puzzle.Answer{}, puzzle.Malformed("bad hand %q", line)
		}
		bid, err := parse.Int(f[1])
		if err != nil {
			return puzzle.Answer{}, err
		}
		hands = append(hands, camelHand{f[0], bid})
	}
	return puzzle.Answer{Part1: winnings(hands, false), Part2: winnings(hands, true)}, nil
}
