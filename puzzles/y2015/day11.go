package y2015

import (
	"strings"

	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2015, 11, solveDay11) }

func solveDay11(input string) (puzzle.Answer, error) {
	pw := strings.TrimSpace(input)
	for _, r := range pw {
		if r < 'a' || r > 'z' {
			return puzzle.Answer{}, puzzle.Malformed("password %q is not lowercase letters", pw)
		}
	}
	first := nextPassword(pw)
	return puzzle.Answer{Part1: first, Part2: nextPassword(first)}, nil
}

func nextPassword(pw string) string {
	b := []byte(pw)
	for {
		increment(b)
		if validPassword(b) {
			return string(b)
		}
	}
}

// increment adds one to b as a base-26 number, skipping past i, o and l
// so whole runs of invalid candidates are never generated.
func increment(b []byte) {
	for i, c := range b {
		if c == 'i' || c == 'o' || c == 'l' {
			b[i]++
			for j := i + 1; j < len(b); j++ {
				b[j] = 'a'
			}
			return
		}
	}
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < 'z' {
			b[i]++
			if b[i] == 'i' || b[i] == 'o' || b[i] == 'l' {
				b[i]++
			}
			return
		}
		b[i] = 'a'
	}
}

func validPassword(b []byte) bool {
	straight := false
	pairs := map[byte]bool{}
	for i := range b {
		switch b[i] {
		case 'i', 'o', 'l':
			return false
		}
		if i >= 2 && b[i-2]+1 == b[i-1] && b[i-1]+1 == b[i] {
			straight = true
		}
		if i >= 1 && b[i] == b[i-1] {
			pairs[b[i]] = true
		}
	}
	return straight && len(pairs) >= 2
}
