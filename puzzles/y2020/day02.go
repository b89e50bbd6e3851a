package y2020

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2020, 2, solveDay02) }

var policyRx = regexp.MustCompile(`^(\d+)-(\d+) ([a-z]): ([a-z]*)$`)

type passwordPolicy struct {
	lo, hi   int
	letter   byte
	password string
}

// countValid is the sled rental rule: letter occurs lo..hi times.
func (p passwordPolicy) countValid() bool {
	n := strings.Count(p.password, string(p.letter))
	return p.lo <= n && n <= p.hi
}

// positionValid is the toboggan rule: exactly one of the 1-based positions
// lo and hi holds letter.
func (p passwordPolicy) positionValid() bool {
	at := func(i int) bool { return i-1 < len(p.password) && p.password[i-1] == p.letter }
	return at(p.lo) != at(p.hi)
}

func solveDay02(input string) (puzzle.Answer, error) {
	count, position := 0, 0
	for _, line := range parse.Lines(input) {
		m, err := parse.Scan(policyRx, strings.TrimSpace(line))
		if err != nil {
			return puzzle.Answer{}, err
		}
		lo, _ := strconv.Atoi(m[0])
		hi, _ := strconv.Atoi(m[1])
		if lo < 1 || lo > hi {
			return puzzle.Answer{}, puzzle.Malformed("bad policy bounds in %q", line)
		}
		p := passwordPolicy{lo: lo, hi: hi, letter: m[2][0], password: m[3]}
		if p.countValid() {
			count++
		}
		if p.positionValid() {
			position++
		}
	}
	return puzzle.Answer{Part1: count, Part2: position}, nil
}
