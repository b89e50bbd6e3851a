package y2015

import (
	"regexp"
	"strconv"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2015, 16, solveDay16) }

var (
	sueRx      = regexp.MustCompile(`^Sue (\d+): (.*)$`)
	sueTraitRx = regexp.MustCompile(`(\w+): (\d+)`)
)

// tickerTape is what the MFCSAM reports about the gifting aunt.
var tickerTape = map[string]int{
	"children": 3, "cats": 7, "samoyeds": 2, "pomeranians": 3, "akitas": 0,
	"vizslas": 0, "goldfish": 5, "trees": 3, "cars": 2, "perfumes": 1,
}

type sue struct {
	id     int
	traits map[string]int
}

func parseSues(input string) ([]sue, error) {
	var out []sue
	for _, line := range parse.Lines(input) {
		m, err := parse.Scan(sueRx, line)
		if err != nil {
			return nil, err
		}
		s := sue{traits: map[string]int{}}
		s.id, _ = strconv.Atoi(m[0])
		for _, kv := range sueTraitRx.FindAllStringSubmatch(m[1], -1) {
			s.traits[kv[1]], _ = strconv.Atoi(kv[2])
		}
		out = append(out, s)
	}
	return out, nil
}

// matchesExact requires every remembered trait to equal the tape.
func (s sue) matchesExact() bool {
	for k, v := range s.traits {
		if tickerTape[k] != v {
			return false
		}
	}
	return true
}

// matchesRanged reads cats and trees as lower bounds and pomeranians and
// goldfish as upper bounds.
func (s sue) matchesRanged() bool {
	for k, v := range s.traits {
		want := tickerTape[k]
		switch k {
		case "cats", "trees":
			if v <= want {
				return false
			}
		case "pomeranians", "goldfish":
			if v >= want {
				return false
			}
		default:
			if v != want {
				return false
			}
		}
	}
	return true
}

func solveDay16(input string) (puzzle.Answer, error) {
	sues, err := parseSues(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	var ans puzzle.Answer
	for _, s := range sues {
		if ans.Part1 == nil && s.matchesExact() {
			ans.Part1 = s.id
		}
		if ans.Part2 == nil && s.matchesRanged() {
			ans.Part2 = s.id
		}
	}
	if ans.Part1 == nil || ans.Part2 == nil {
		return ans, puzzle.ErrNoSolution
	}
	return ans, nil
}
