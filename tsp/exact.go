package tsp

import "fmt"

// Solve runs Held–Karp over dist.
//
// dp[mask][j] is the best weight of a path that visits exactly the vertices
// in mask and ends at j. Closed tours seed only vertex 0; open paths seed
// every vertex.
func Solve(dist [][]int, opts Options) (Result, error) {
	n := len(dist)
	if n == 0 {
		return Result{}, ErrEmptyMatrix
	}
	if n > MaxVertices {
		return Result{}, fmt.Errorf("%w: %d > %d", ErrTooLarge, n, MaxVertices)
	}
	for i, row := range dist {
		if len(row) != n {
			return Result{}, fmt.Errorf("%w: row %d length %d, want %d", ErrNonSquare, i, len(row), n)
		}
	}
	better := func(a, b int) bool { return a < b }
	if opts.Objective == Maximize {
		better = func(a, b int) bool { return a > b }
	}

	const (
		unset int8 = -2
		seed  int8 = -1
	)
	// Row-major over (mask, end): entry mask*n+j.
	full := 1<<n - 1
	dp := make([]int, (full+1)*n)
	parent := make([]int8, (full+1)*n)
	for i := range parent {
		parent[i] = unset
	}
	if opts.Closed {
		parent[n] = seed // mask 1, end 0
	} else {
		for j := 0; j < n; j++ {
			parent[(1<<j)*n+j] = seed
		}
	}

	for mask := 1; mask <= full; mask++ {
		for j := 0; j < n; j++ {
			at := mask*n + j
			if parent[at] == unset {
				continue
			}
			for k := 0; k < n; k++ {
				if mask&(1<<k) != 0 {
					continue
				}
				next := (mask|1<<k)*n + k
				cand := dp[at] + dist[j][k]
				if parent[next] == unset || better(cand, dp[next]) {
					dp[next] = cand
					parent[next] = int8(j)
				}
			}
		}
	}

	last, best, found := -1, 0, false
	for j := 0; j < n; j++ {
		if parent[full*n+j] == unset {
			continue
		}
		total := dp[full*n+j]
		if opts.Closed {
			total += dist[j][0]
		}
		if !found || better(total, best) {
			last, best, found = j, total, true
		}
	}

	tour := make([]int, 0, n+1)
	for mask, j := full, last; j >= 0; {
		tour = append(tour, j)
		p := parent[mask*n+j]
		mask ^= 1 << j
		j = int(p)
	}
	for i, k := 0, len(tour)-1; i < k; i, k = i+1, k-1 {
		tour[i], tour[k] = tour[k], tour[i]
	}
	if opts.Closed {
		tour = append(tour, 0)
	}
	return Result{Tour: tour, Cost: best}, nil
}
