package dijkstra

import (
	"container/heap"
	"fmt"
)

// runner carries the mutable state of one run.
type runner[K comparable] struct {
	neighbors func(K) []Edge[K]
	dist      map[K]int
	prev      map[K]K
	done      map[K]bool
	pq        nodePQ[K]
	seq       int
}

func newRunner[K comparable](starts []K, neighbors func(K) []Edge[K]) *runner[K] {
	r := &runner[K]{
		neighbors: neighbors,
		dist:      make(map[K]int),
		prev:      make(map[K]K),
		done:      make(map[K]bool),
	}
	for _, s := range starts {
		if _, ok := r.dist[s]; ok {
			continue
		}
		r.dist[s] = 0
		r.push(s, 0)
	}
	return r
}

func (r *runner[K]) push(k K, d int) {
	heap.Push(&r.pq, item[K]{state: k, dist: d, seq: r.seq})
	r.seq++
}

// next settles and returns the closest unsettled state.
func (r *runner[K]) next() (K, int, bool, error) {
	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(item[K])
		if r.done[it.state] || it.dist > r.dist[it.state] {
			continue // stale entry
		}
		r.done[it.state] = true
		if err := r.relax(it.state, it.dist); err != nil {
			return it.state, 0, false, err
		}
		return it.state, it.dist, true, nil
	}
	var zero K
	return zero, 0, false, nil
}

func (r *runner[K]) relax(u K, du int) error {
	for _, e := range r.neighbors(u) {
		if e.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeWeight, u, e.To, e.Cost)
		}
		if r.done[e.To] {
			continue
		}
		nd := du + e.Cost
		if old, ok := r.dist[e.To]; ok && old <= nd {
			continue
		}
		r.dist[e.To] = nd
		r.prev[e.To] = u
		r.push(e.To, nd)
	}
	return nil
}

// Run settles every state reachable from starts.
func Run[K comparable](starts []K, neighbors func(K) []Edge[K]) (*Result[K], error) {
	if len(starts) == 0 {
		return nil, ErrNoStart
	}
	r := newRunner(starts, neighbors)
	for {
		_, _, ok, err := r.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}
	dist := make(map[K]int, len(r.done))
	for k := range r.done {
		dist[k] = r.dist[k]
	}
	prev := make(map[K]K, len(r.prev))
	for k, p := range r.prev {
		if r.done[k] {
			prev[k] = p
		}
	}
	return &Result[K]{Dist: dist, Prev: prev}, nil
}

// Distances is Run without the predecessor map.
func Distances[K comparable](starts []K, neighbors func(K) []Edge[K]) (map[K]int, error) {
	res, err := Run(starts, neighbors)
	if err != nil {
		return nil, err
	}
	return res.Dist, nil
}

// Search returns the cost of the cheapest path from any start to the first
// settled state satisfying goal. It stops as soon as that state is settled,
// so it also works on unbounded state spaces as long as a goal is reachable.
func Search[K comparable](starts []K, neighbors func(K) []Edge[K], goal func(K) bool) (cost int, end K, ok bool, err error) {
	if len(starts) == 0 {
		return 0, end, false, ErrNoStart
	}
	r := newRunner(starts, neighbors)
	for {
		// goal is checked before relaxing so a goal state's neighbors are never generated.
		it, found := r.peek()
		if !found {
			return 0, end, false, nil
		}
		if goal(it.state) {
			return it.dist, it.state, true, nil
		}
		if _, _, _, err := r.next(); err != nil {
			return 0, end, false, err
		}
	}
}

// peek drops stale entries and returns the heap minimum without settling it.
func (r *runner[K]) peek() (item[K], bool) {
	for r.pq.Len() > 0 {
		it := r.pq[0]
		if r.done[it.state] || it.dist > r.dist[it.state] {
			heap.Pop(&r.pq)
			continue
		}
		return it, true
	}
	return item[K]{}, false
}
