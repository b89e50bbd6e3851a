package y2022

import (
	"math/bits"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2022, 3, solveDay03) }

func itemPriority(r rune) int {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 1
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 27
	}
	return 0
}

// itemSet has bit p set for every item of priority p.
func itemSet(s string) (uint64, error) {
	var set uint64
	for _, r := range s {
		p := itemPriority(r)
		if p == 0 {
			return 0, puzzle.Malformed("bad item %q", r)
		}
		set |= 1 << p
	}
	return set, nil
}

func sharedPriority(sets ...uint64) (int, error) {
	common := ^uint64(0)
	for _, s := range sets {
		common &= s
	}
	if bits.OnesCount64(common) != 1 {
		return 0, puzzle.Malformed("%d shared items, want 1", bits.OnesCount64(common))
	}
	return bits.TrailingZeros64(common), nil
}

func solveDay03(input string) (puzzle.Answer, error) {
	lines := parse.Lines(input)
	whole := make([]uint64, len(lines))
	halves := 0
	for i, line := range lines {
		if len(line)%2 != 0 {
			return puzzle.Answer{}, puzzle.Malformed("odd rucksack %q", line)
		}
		left, err := itemSet(line[:len(line)/2])
		if err != nil {
			return puzzle.Answer{}, err
		}
		right, err := itemSet(line[len(line)/2:])
		if err != nil {
			return puzzle.Answer{}, err
		}
		p, err := sharedPriority(left, right)
		if err != nil {
			return puzzle.Answer{}, err
		}
		halves += p
		whole[i] = left | right
	}
	ans := puzzle.Answer{Part1: halves}
	if len(whole)%3 == 0 {
		badges := 0
		for i := 0; i < len(whole); i += 3 {
			p, err := sharedPriority(whole[i : i+3]...)
			if err != nil {
				return puzzle.Answer{}, err
			}
			badges += p
		}
		ans.Part2 = badges
	}
	return ans, nil
}
