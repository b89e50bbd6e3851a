package matrix

// FloydWarshall closes d in place so every entry holds the shortest path
// length. Loop order is fixed (k → i → j) and only strict improvements are
// written, so results are deterministic.
//
// Complexity: Time O(n³), extra space O(1).
func (d *Distances) FloydWarshall() {
	n := d.n
	data := d.data
	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			ik := data[i*n+k]
			if ik >= Inf {
				continue // i cannot reach k
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				kj := data[baseK+j]
				if kj >= Inf {
					continue
				}
				if cand := ik + kj; cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}
