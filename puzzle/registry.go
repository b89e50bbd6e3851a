package puzzle

import (
	"fmt"
	"slices"
	"sync"
)

var (
	mu      sync.RWMutex
	solvers = make(map[Key]Solver)
)

// Register installs s as the solver for year/day.
// It panics on a duplicate registration or an out-of-range day, since both
// are programming errors caught at init time.
func Register(year, day int, s Solver) {
	if day < 1 || day > 25 {
		panic(fmt.Sprintf("puzzle: day %d out of range", day))
	}
	if s == nil {
		panic(fmt.Sprintf("puzzle: nil solver for %d/%d", year, day))
	}
	mu.Lock()
	defer mu.Unlock()
	k := Key{Year: year, Day: day}
	if _, dup := solvers[k]; dup {
		panic("puzzle: duplicate registration for " + k.String())
	}
	solvers[k] = s
}

// Lookup returns the solver registered for year/day.
func Lookup(year, day int) (Solver, error) {
	mu.RLock()
	defer mu.RUnlock()
	s, ok := solvers[Key{Year: year, Day: day}]
	if !ok {
		return nil, fmt.Errorf("%w: %d day %d", ErrUnknownPuzzle, year, day)
	}
	return s, nil
}

// Days returns the registered days of year in ascending order.
func Days(year int) []int {
	mu.RLock()
	defer mu.RUnlock()
	var days []int
	for k := range solvers {
		if k.Year == year {
			days = append(days, k.Day)
		}
	}
	slices.Sort(days)
	return days
}

// Years returns every year with at least one registered day, ascending.
func Years() []int {
	mu.RLock()
	defer mu.RUnlock()
	seen := make(map[int]bool)
	var years []int
	for k := range solvers {
		if !seen[k.Year] {
			seen[k.Year] = true
			years = append(years, k.Year)
		}
	}
	slices.Sort(years)
	return years
}

// Solve looks up and runs the solver for year/day.
func Solve(year, day int, input string) (Answer, error) {
	s, err := Lookup(year, day)
	if err != nil {
		return Answer{}, err
	}
	return s(input)
}
