package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNoStart is returned when Search is given no start states.
	ErrNoStart = errors.New("bfs: no start state")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a state the search never saw.
	ErrNotReached = errors.New("bfs: state not reached")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters for a search.
type Options struct {
	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	err error
}

// WithMaxDepth limits the search to states at most d steps away.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a traversal.
type Result[K comparable] struct {
	Order  []K
	Depth  map[K]int
	Parent map[K]K
}

// Reached reports whether k was visited.
func (r *Result[K]) Reached(k K) bool {
	_, ok := r.Depth[k]
	return ok
}

// PathTo reconstructs the path from its start to dest, both included.
func (r *Result[K]) PathTo(dest K) ([]K, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	path := []K{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
