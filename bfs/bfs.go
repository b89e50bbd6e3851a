package bfs

// Search explores everything reachable from starts. neighbors is called once
// per visited state. Duplicate starts are visited once.
func Search[K comparable](starts []K, neighbors func(K) []K, opts ...Option) (*Result[K], error) {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(starts) == 0 {
		return nil, ErrNoStart
	}

	res := &Result[K]{
		Depth:  make(map[K]int),
		Parent: make(map[K]K),
	}
	queue := make([]K, 0, len(starts))
	for _, s := range starts {
		if _, seen := res.Depth[s]; seen {
			continue
		}
		res.Depth[s] = 0
		queue = append(queue, s)
	}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		res.Order = append(res.Order, u)
		next := res.Depth[u] + 1
		if o.MaxDepth > 0 && next > o.MaxDepth {
			continue
		}
		for _, v := range neighbors(u) {
			if _, seen := res.Depth[v]; seen {
				continue
			}
			res.Depth[v] = next
			res.Parent[v] = u
			queue = append(queue, v)
		}
	}
	return res, nil
}

// ShortestPath returns the number of steps from the nearest start to the
// first state satisfying goal, that state, and whether one was found.
// The search stops as soon as a goal state is dequeued.
func ShortestPath[K comparable](starts []K, neighbors func(K) []K, goal func(K) bool) (steps int, end K, ok bool) {
	depth := make(map[K]int)
	queue := make([]K, 0, len(starts))
	for _, s := range starts {
		if _, seen := depth[s]; !seen {
			depth[s] = 0
			queue = append(queue, s)
		}
	}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if goal(u) {
			return depth[u], u, true
		}
		for _, v := range neighbors(u) {
			if _, seen := depth[v]; !seen {
				depth[v] = depth[u] + 1
				queue = append(queue, v)
			}
		}
	}
	var zero K
	return 0, zero, false
}
