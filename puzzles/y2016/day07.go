package y2016

import (
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2016, 7, solveDay07) }

// splitIPv7 separates the bracketed hypernet sequences from the rest.
func splitIPv7(addr string) (supernet, hypernet []string, err error) {
	for i, part := range strings.FieldsFunc(addr, func(r rune) bool { return r == '[' || r == ']' }) {
		if i%2 == 0 {
			supernet = append(supernet, part)
		} else {
			hypernet = append(hypernet, part)
		}
	}
	if strings.Count(addr, "[") != strings.Count(addr, "]") {
		return nil, nil, puzzle.Malformed("unbalanced brackets in %q", addr)
	}
	return supernet, hypernet, nil
}

func hasABBA(s string) bool {
	for i := 0; i+3 < len(s); i++ {
		if s[i] != s[i+1] && s[i] == s[i+3] && s[i+1] == s[i+2] {
			return true
		}
	}
	return false
}

func anyABBA(seqs []string) bool {
	for _, s := range seqs {
		if hasABBA(s) {
			return true
		}
	}
	return false
}

func supportsTLS(addr string) (bool, error) {
	super, hyper, err := splitIPv7(addr)
	if err != nil {
		return false, err
	}
	return anyABBA(super) && !anyABBA(hyper), nil
}

func supportsSSL(addr string) (bool, error) {
	super, hyper, err := splitIPv7(addr)
	if err != nil {
		return false, err
	}
	for _, s := range super {
		for i := 0; i+2 < len(s); i++ {
			if s[i] == s[i+1] || s[i] != s[i+2] {
				continue
			}
			bab := string([]byte{s[i+1], s[i], s[i+1]})
			for _, h := range hyper {
				if strings.Contains(h, bab) {
					return true, nil
				}
			}
		}
	}
	return false, nil
}

func solveDay07(input string) (puzzle.Answer, error) {
	tls, ssl := 0, 0
	for _, addr := range parse.Lines(input) {
		addr = strings.TrimSpace(addr)
		ok, err := supportsTLS(addr)
		if err != nil {
			return puzzle.Answer{}, err
		}
		if ok {
			tls++
		}
		if ok, _ = supportsSSL(addr); ok {
			ssl++
		}
	}
	return puzzle.Answer{Part1: tls, Part2: ssl}, nil
}
