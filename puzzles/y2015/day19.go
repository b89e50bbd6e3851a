package y2015

import (
	"regexp"
	"strings"

	"github.com/katalvlaran/advent/bfs"
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2015, 19, solveDay19) }

var elementRx = regexp.MustCompile(`e|[A-Z][a-z]?`)

type replacement struct {
	from, to string
}

func parseMachine(input string) ([]replacement, string, error) {
	blocks := parse.Blocks(input)
	if len(blocks) != 2 {
		return nil, "", puzzle.Malformed("want replacements and a molecule")
	}
	var reps []replacement
	for _, line := range parse.Lines(blocks[0]) {
		from, to, err := parse.Cut(line, " => ")
		if err != nil {
			return nil, "", err
		}
		reps = append(reps, replacement{from, to})
	}
	return reps, strings.TrimSpace(blocks[1]), nil
}

// calibrate counts the distinct molecules one replacement away from mol.
func calibrate(reps []replacement, mol string) int {
	seen := map[string]bool{}
	for _, r := range reps {
		for i := 0; i+len(r.from) <= len(mol); i++ {
			if mol[i:i+len(r.from)] == r.from {
				seen[mol[:i]+r.to+mol[i+len(r.from):]] = true
			}
		}
	}
	return len(seen)
}

// shapeCost counts elements, discounting the free Rn/Ar wrappers and two
// per Y.
func shapeCost(mol string) int {
	n := 0
	for _, el := range elementRx.FindAllString(mol, -1) {
		switch el {
		case "Rn", "Ar":
		case "Y":
			n--
		default:
			n++
		}
	}
	return n
}

// countable reports whether every rule adds exactly one counted element,
// which makes the step count a function of the molecule alone.
func countable(reps []replacement) bool {
	for _, r := range reps {
		if shapeCost(r.to) != 2 {
			return false
		}
	}
	return true
}

// fabricationSteps returns the fewest replacements turning "e" into mol.
func fabricationSteps(reps []replacement, mol string) (int, error) {
	if countable(reps) {
		return shapeCost(mol) - 1, nil
	}
	return reduceSteps(reps, mol)
}

// reduceSteps searches backwards from mol, undoing one replacement per
// step, until only "e" is left. Rules from "e" undo only a whole molecule.
func reduceSteps(reps []replacement, mol string) (int, error) {
	undo := func(s string) []string {
		var out []string
		for _, r := range reps {
			if r.from == "e" {
				if s == r.to {
					out = append(out, "e")
				}
				continue
			}
			for i := 0; i+len(r.to) <= len(s); i++ {
				if s[i:i+len(r.to)] != r.to {
					continue
				}
				next := s[:i] + r.from + s[i+len(r.to):]
				if len(next) <= len(mol) {
					out = append(out, next)
				}
			}
		}
		return out
	}
	steps, _, ok := bfs.ShortestPath([]string{mol}, undo, func(s string) bool { return s == "e" })
	if !ok {
		return 0, puzzle.ErrNoSolution
	}
	return steps, nil
}

func solveDay19(input string) (puzzle.Answer, error) {
	reps, mol, err := parseMachine(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	steps, err := fabricationSteps(reps, mol)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: calibrate(reps, mol), Part2: steps}, nil
}
