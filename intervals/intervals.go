package intervals

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Interval is the inclusive integer range [Lo, Hi]. Lo > Hi denotes empty.
type Interval struct {
	Lo, Hi int
}

// Len returns the number of integers in iv.
func (iv Interval) Len() int {
	if iv.Lo > iv.Hi {
		return 0
	}
	return iv.Hi - iv.Lo + 1
}

// Contains reports whether x lies in iv.
func (iv Interval) Contains(x int) bool { return iv.Lo <= x && x <= iv.Hi }

// Overlaps reports whether iv and o share at least one integer.
func (iv Interval) Overlaps(o Interval) bool { return iv.Lo <= o.Hi && o.Lo <= iv.Hi }

// Covers reports whether o lies entirely inside iv.
func (iv Interval) Covers(o Interval) bool { return iv.Lo <= o.Lo && o.Hi <= iv.Hi }

// Intersect returns the overlap of iv and o and whether it is non-empty.
func (iv Interval) Intersect(o Interval) (Interval, bool) {
	r := Interval{max(iv.Lo, o.Lo), min(iv.Hi, o.Hi)}
	return r, r.Lo <= r.Hi
}

func (iv Interval) String() string { return fmt.Sprintf("[%d,%d]", iv.Lo, iv.Hi) }

// Set is a canonical union of intervals.
type Set struct {
	ivs []Interval
}

// Merge builds a Set from arbitrary, possibly overlapping intervals.
// Empty intervals are dropped.
func Merge(list ...Interval) *Set {
	s := &Set{}
	for _, iv := range list {
		if iv.Lo <= iv.Hi {
			s.ivs = append(s.ivs, iv)
		}
	}
	s.normalize()
	return s
}

func (s *Set) normalize() {
	if len(s.ivs) < 2 {
		return
	}
	slices.SortFunc(s.ivs, func(a, b Interval) int { return cmp.Compare(a.Lo, b.Lo) })
	out := s.ivs[:1]
	for _, iv := range s.ivs[1:] {
		last := &out[len(out)-1]
		if iv.Lo <= last.Hi+1 {
			last.Hi = max(last.Hi, iv.Hi)
			continue
		}
		out = append(out, iv)
	}
	s.ivs = out
}

// Add inserts iv.
func (s *Set) Add(iv Interval) {
	if iv.Lo > iv.Hi {
		return
	}
	s.ivs = append(s.ivs, iv)
	s.normalize()
}

// Intervals returns a copy of the canonical ranges in ascending order.
func (s *Set) Intervals() []Interval { return slices.Clone(s.ivs) }

// Contains reports whether x is in the set.
func (s *Set) Contains(x int) bool {
	i, found := slices.BinarySearchFunc(s.ivs, x, func(iv Interval, x int) int {
		switch {
		case iv.Hi < x:
			return -1
		case iv.Lo > x:
			return 1
		}
		return 0
	})
	return found && s.ivs[i].Contains(x)
}

// Len returns the total number of integers covered.
func (s *Set) Len() int {
	n := 0
	for _, iv := range s.ivs {
		n += iv.Len()
	}
	return n
}

// Intersect returns the integers present in both s and o.
func (s *Set) Intersect(o *Set) *Set {
	out := &Set{}
	i, j := 0, 0
	for i < len(s.ivs) && j < len(o.ivs) {
		if r, ok := s.ivs[i].Intersect(o.ivs[j]); ok {
			out.ivs = append(out.ivs, r)
		}
		if s.ivs[i].Hi < o.ivs[j].Hi {
			i++
		} else {
			j++
		}
	}
	return out
}

// Subtract returns the integers in s that are not in o.
func (s *Set) Subtract(o *Set) *Set {
	out := &Set{}
	for _, iv := range s.ivs {
		lo := iv.Lo
		for _, cut := range o.ivs {
			if cut.Hi < lo {
				continue
			}
			if cut.Lo > iv.Hi {
				break
			}
			if cut.Lo > lo {
				out.ivs = append(out.ivs, Interval{lo, cut.Lo - 1})
			}
			lo = cut.Hi + 1
		}
		if lo <= iv.Hi {
			out.ivs = append(out.ivs, Interval{lo, iv.Hi})
		}
	}
	return out
}

// Gaps returns the uncovered ranges within [lo, hi].
func (s *Set) Gaps(lo, hi int) []Interval {
	return Merge(Interval{lo, hi}).Subtract(s).ivs
}

func (s *Set) String() string {
	parts := make([]string, len(s.ivs))
	for i, iv := range s.ivs {
		parts[i] = iv.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}
