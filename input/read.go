package input

import (
	"os"
	"strings"
)

// ReadString returns the contents of path with surrounding whitespace trimmed.
func ReadString(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// ReadLines returns the contents of path split on newlines. A trailing
// newline produces a final empty element, as the raw text does.
func ReadLines(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(string(b), "\n"), nil
}

// Exists reports whether path names an existing regular file.
func Exists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.Mode().IsRegular()
}
