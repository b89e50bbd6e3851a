package y2020

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2020, 4, solveDay04) }

var (
	hgtRx     = regexp.MustCompile(`^(\d+)(cm|in)$`)
	hclRx     = regexp.MustCompile(`^#[0-9a-f]{6}$`)
	pidRx     = regexp.MustCompile(`^\d{9}$`)
	eyeColors = map[string]bool{"amb": true, "blu": true, "brn": true, "gry": true, "grn": true, "hzl": true, "oth": true}
)

// passportRules validates each required field; cid is optional.
var passportRules = map[string]func(string) bool{
	"byr": yearIn(1920, 2002),
	"iyr": yearIn(2010, 2020),
	"eyr": yearIn(2020, 2030),
	"hgt": func(v string) bool {
		m := hgtRx.FindStringSubmatch(v)
		if m == nil {
			return false
		}
		n, _ := strconv.Atoi(m[1])
		if m[2] == "cm" {
			return 150 <= n && n <= 193
		}
		return 59 <= n && n <= 76
	},
	"hcl": hclRx.MatchString,
	"ecl": func(v string) bool { return eyeColors[v] },
	"pid": pidRx.MatchString,
}

func yearIn(lo, hi int) func(string) bool {
	return func(v string) bool {
		n, err := strconv.Atoi(v)
		return err == nil && len(v) == 4 && lo <= n && n <= hi
	}
}

func parsePassports(input string) ([]map[string]string, error) {
	var out []map[string]string
	for _, block := range parse.Blocks(input) {
		p := make(map[string]string)
		for _, kv := range strings.Fields(block) {
			k, v, err := parse.Cut(kv, ":")
			if err != nil {
				return nil, err
			}
			p[k] = v
		}
		out = append(out, p)
	}
	return out, nil
}

func solveDay04(input string) (puzzle.Answer, error) {
	passports, err := parsePassports(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	present, valid := 0, 0
	for _, p := range passports {
		hasAll, allValid := true, true
		for field, ok := range passportRules {
			v, has := p[field]
			hasAll = hasAll && has
			allValid = allValid && has && ok(v)
		}
		if hasAll {
			present++
		}
		if allValid {
			valid++
		}
	}
	return puzzle.Answer{Part1: present, Part2: valid}, nil
}
