package y2020

import (
	"math/bits"
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2020, 6, solveDay06) }

func answerSet(person string) (uint32, error) {
	var set uint32
	for _, ch := range person {
		if ch < 'a' || ch > 'z' {
			return 0, puzzle.Malformed("bad answer %q", ch)
		}
		set |= 1 << (ch - 'a')
	}
	return set, nil
}

func solveDay06(input string) (puzzle.Answer, error) {
	anyone, everyone := 0, 0
	for _, group := range parse.Blocks(input) {
		var union uint32
		inter := ^uint32(0)
		for _, person := range strings.Fields(group) {
			set, err := answerSet(person)
			if err != nil {
				return puzzle.Answer{}, err
			}
			union |= set
			inter &= set
		}
		anyone += bits.OnesCount32(union)
		everyone += bits.OnesCount32(inter & (1<<26 - 1))
	}
	return puzzle.Answer{Part1: anyone, Part2: everyone}, nil
}
