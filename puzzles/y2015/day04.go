package y2015

import (
	"crypto/md5"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2015, 4, solveDay04) }

func solveDay04(input string) (puzzle.Answer, error) {
	key := strings.TrimSpace(input)
	if key == "" {
		return puzzle.Answer{}, puzzle.Malformed("empty secret key")
	}
	five := mine(key, 5, 1)
	return puzzle.Answer{Part1: five, Part2: mine(key, 6, five)}, nil
}

// mine returns the lowest n >= from whose MD5(key+n) hex digest starts with
// zeros zero digits.
func mine(key string, zeros, from int) int {
	buf := []byte(key)
	for n := from; ; n++ {
		buf = strconv.AppendInt(buf[:len(key)], int64(n), 10)
		sum := md5.Sum(buf)
		if leadingZeroNibbles(sum[:], zeros) {
			return n
		}
	}
}

func leadingZeroNibbles(b []byte, n int) bool {
	for i := 0; i < n; i++ {
		nib := b[i/2]
		if i%2 == 0 {
			nib >>= 4
		}
		if nib&0x0f != 0 {
			return false
		}
	}
	return true
}
