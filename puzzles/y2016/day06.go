package y2016

import (
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2016, 6, solveDay06) }

func solveDay06(input string) (puzzle.Answer, error) {
	lines := parse.Lines(input)
	if len(lines) == 0 {
		return puzzle.Answer{}, puzzle.Malformed("no messages")
	}
	width := len(lines[0])
	freq := make([][26]int, width)
	for _, l := range lines {
		if len(l) != width {
			return puzzle.Answer{}, puzzle.Malformed("message %q is not %d long", l, width)
		}
		for i := 0; i < width; i++ {
			if l[i] < 'a' || l[i] > 'z' {
				return puzzle.Answer{}, puzzle.Malformed("bad letter %q", l[i])
			}
			freq[i][l[i]-'a']++
		}
	}
	most := make([]byte, width)
	least := make([]byte, width)
	for i, f := range freq {
		hi, lo := -1, -1
		for c, n := range f {
			if n == 0 {
				continue
			}
			if hi < 0 || n > f[hi] {
				hi = c
			}
			if lo < 0 || n < f[lo] {
				lo = c
			}
		}
		most[i], least[i] = byte('a'+hi), byte('a'+lo)
	}
	return puzzle.Answer{Part1: string(most), Part2: string(least)}, nil
}
