// Package parse collects the small text-splitting and number-reading helpers
// every puzzle needs. Failures wrap puzzle.ErrMalformedInput so callers can
// test for them with errors.Is.
package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/puzzle"
)

var intRx = regexp.MustCompile(`-?\d+`)

// Lines splits text into lines after trimming surrounding whitespace.
// Carriage returns are dropped. Empty text yields no lines.
func Lines(text string) []string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Blocks splits text into paragraphs separated by blank lines.
func Blocks(text string) []string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n\n")
}

// Int parses a base-10 integer, ignoring surrounding whitespace.
func Int(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, puzzle.Malformed("not an integer: %q", s)
	}
	return n, nil
}

// Ints extracts every (optionally negative) integer appearing in s, in order.
func Ints(s string) ([]int, error) {
	matches := intRx.FindAllString(s, -1)
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m)
		if err != nil {
			return nil, puzzle.Malformed("integer out of range: %q", m)
		}
		out = append(out, n)
	}
	return out, nil
}

// Uints is Ints without sign handling: "1-3" yields 1 and 3.
func Uints(s string) ([]int, error) {
	return Ints(strings.ReplaceAll(s, "-", " "))
}

// Fields parses every whitespace-separated field of s as an integer.
func Fields(s string) ([]int, error) {
	fs := strings.Fields(s)
	out := make([]int, len(fs))
	for i, f := range fs {
		n, err := Int(f)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// Split parses every sep-separated part of s as an integer.
func Split(s, sep string) ([]int, error) {
	parts := strings.Split(strings.TrimSpace(s), sep)
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := Int(p)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// IntLines parses one integer per line.
func IntLines(text string) ([]int, error) {
	lines := Lines(text)
	out := make([]int, len(lines))
	for i, l := range lines {
		n, err := Int(l)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// Digits converts a string of decimal digits to their values.
func Digits(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, puzzle.Malformed("not a digit: %q", s[i])
		}
		out[i] = int(s[i] - '0')
	}
	return out, nil
}

// Cut is strings.Cut that reports a malformed-input error when sep is absent.
func Cut(s, sep string) (before, after string, err error) {
	before, after, ok := strings.Cut(s, sep)
	if !ok {
		return "", "", puzzle.Malformed("missing %q in %q", sep, s)
	}
	return before, after, nil
}

// Scan matches s against rx and returns the submatches, or a
// malformed-input error if s does not match.
func Scan(rx *regexp.Regexp, s string) ([]string, error) {
	m := rx.FindStringSubmatch(s)
	if m == nil {
		return nil, puzzle.Malformed("%q does not match %s", s, rx)
	}
	return m[1:], nil
}
