package y2016

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2016, 4, solveDay04) }

var roomRx = regexp.MustCompile(`^([a-z-]+)-(\d+)\[([a-z]{5})\]$`)

type room struct {
	name     string
	sector   int
	checksum string
}

func (r room) real() bool {
	var freq [26]int
	for _, ch := range r.name {
		if ch != '-' {
			freq[ch-'a']++
		}
	}
	letters := make([]byte, 0, 26)
	for i, n := range freq {
		if n > 0 {
			letters = append(letters, byte('a'+i))
		}
	}
	slices.SortStableFunc(letters, func(a, b byte) int {
		return cmp.Compare(freq[b-'a'], freq[a-'a'])
	})
	if len(letters) < 5 {
		return false
	}
	return string(letters[:5]) == r.checksum
}

func (r room) decrypt() string {
	shift := rune(r.sector % 26)
	return strings.Map(func(ch rune) rune {
		if ch == '-' {
			return ' '
		}
		return 'a' + (ch-'a'+shift)%26
	}, r.name)
}

func solveDay04(input string) (puzzle.Answer, error) {
	sum, northPole := 0, -1
	for _, line := range parse.Lines(input) {
		m, err := parse.Scan(roomRx, strings.TrimSpace(line))
		if err != nil {
			return puzzle.Answer{}, err
		}
		sector, _ := strconv.Atoi(m[1])
		r := room{name: m[0], sector: sector, checksum: m[2]}
		if !r.real() {
			continue
		}
		sum += r.sector
		if northPole < 0 && strings.Contains(r.decrypt(), "northpole") {
			northPole = r.sector
		}
	}
	ans := puzzle.Answer{Part1: sum}
	if northPole >= 0 {
		ans.Part2 = northPole
	}
	return ans, nil
}
