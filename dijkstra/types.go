package dijkstra

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoStart indicates that no start state was supplied.
	ErrNoStart = errors.New("dijkstra: no start state")

	// ErrNegativeWeight indicates that a neighbors function produced a negative cost.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnreachable indicates that PathTo was asked for an unsettled state.
	ErrUnreachable = errors.New("dijkstra: state not reachable")
)

// Edge is a single outgoing transition with its cost.
type Edge[K comparable] struct {
	To   K
	Cost int
}

// Result holds settled distances and the predecessor of every settled state
// other than the starts.
type Result[K comparable] struct {
	Dist map[K]int
	Prev map[K]K
}

// PathTo walks Prev back from dest and returns the path start→dest.
func (r *Result[K]) PathTo(dest K) ([]K, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
	}
	path := []K{dest}
	for cur := dest; ; {
		p, ok := r.Prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// item is a heap entry. seq breaks ties by insertion order.
type item[K comparable] struct {
	state K
	dist  int
	seq   int
}

// nodePQ is a min-heap of items keyed on (dist, seq).
type nodePQ[K comparable] []item[K]

func (pq nodePQ[K]) Len() int { return len(pq) }

func (pq nodePQ[K]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ[K]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[K]) Push(x any) { *pq = append(*pq, x.(item[K])) }

func (pq *nodePQ[K]) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
