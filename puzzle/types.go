package puzzle

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every solver.
var (
	// ErrMalformedInput indicates the input text could not be parsed.
	ErrMalformedInput = errors.New("puzzle: malformed input")

	// ErrNoSolution indicates a well-formed input that yields no answer.
	ErrNoSolution = errors.New("puzzle: no solution")

	// ErrUnknownPuzzle indicates that no solver is registered for a day.
	ErrUnknownPuzzle = errors.New("puzzle: unknown puzzle")
)

// Answer holds the results of both parts of a day.
// A nil part means the day has no answer for it (e.g. the final day).
type Answer struct {
	Part1 any
	Part2 any
}

// Part returns the answer for part 1 or 2.
func (a Answer) Part(n int) any {
	if n == 2 {
		return a.Part2
	}
	return a.Part1
}

// Solver computes both answers from one day's raw input.
type Solver func(input string) (Answer, error)

// Key identifies one puzzle.
type Key struct {
	Year int
	Day  int
}

// String renders the key as "2022/07".
func (k Key) String() string {
	return fmt.Sprintf("%d/%02d", k.Year, k.Day)
}

// Malformed wraps ErrMalformedInput with a formatted reason.
func Malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}
