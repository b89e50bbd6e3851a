package graph

import "fmt"

// Directed reports whether edges are one-way.
func (g *Graph[K]) Directed() bool { return g.directed }

// AddVertex adds v if it is not present yet.
func (g *Graph[K]) AddVertex(v K) {
	if _, ok := g.adj[v]; ok {
		return
	}
	g.adj[v] = nil
	g.order = append(g.order, v)
}

// AddEdge adds u→v with weight w, creating both vertices as needed.
// Re-adding an existing edge updates its weight in place.
// For undirected graphs v→u is added too.
func (g *Graph[K]) AddEdge(u, v K, w int) {
	g.AddVertex(u)
	g.AddVertex(v)
	g.link(u, v, w)
	if !g.directed && u != v {
		g.link(v, u, w)
	}
}

func (g *Graph[K]) link(u, v K, w int) {
	key := [2]K{u, v}
	if _, ok := g.weight[key]; ok {
		for i := range g.adj[u] {
			if g.adj[u][i].To == v {
				g.adj[u][i].Weight = w
			}
		}
	} else {
		g.adj[u] = append(g.adj[u], Edge[K]{From: u, To: v, Weight: w})
	}
	g.weight[key] = w
}

// HasVertex reports whether v was added.
func (g *Graph[K]) HasVertex(v K) bool {
	_, ok := g.adj[v]
	return ok
}

// HasEdge reports whether u→v exists.
func (g *Graph[K]) HasEdge(u, v K) bool {
	_, ok := g.weight[[2]K{u, v}]
	return ok
}

// Weight returns the weight of u→v and whether the edge exists.
func (g *Graph[K]) Weight(u, v K) (int, bool) {
	w, ok := g.weight[[2]K{u, v}]
	return w, ok
}

// Len returns the number of vertices.
func (g *Graph[K]) Len() int { return len(g.order) }

// Vertices returns all vertices in insertion order.
func (g *Graph[K]) Vertices() []K { return append([]K(nil), g.order...) }

// Neighbors returns the outgoing edges of v.
func (g *Graph[K]) Neighbors(v K) ([]Edge[K], error) {
	es, ok := g.adj[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	return es, nil
}

// Successors returns the targets of v's outgoing edges; unknown v yields none.
func (g *Graph[K]) Successors(v K) []K {
	es := g.adj[v]
	out := make([]K, len(es))
	for i, e := range es {
		out[i] = e.To
	}
	return out
}

// Edges returns every stored edge, grouped by source in vertex order.
// Undirected edges appear once per direction.
func (g *Graph[K]) Edges() []Edge[K] {
	var out []Edge[K]
	for _, v := range g.order {
		out = append(out, g.adj[v]...)
	}
	return out
}

// Reverse returns a graph with every directed edge flipped.
// An undirected graph is returned as a copy.
func (g *Graph[K]) Reverse() *Graph[K] {
	r := &Graph[K]{directed: g.directed, adj: make(map[K][]Edge[K], len(g.adj)), weight: make(map[[2]K]int, len(g.weight))}
	for _, v := range g.order {
		r.AddVertex(v)
	}
	for _, v := range g.order {
		for _, e := range g.adj[v] {
			if g.directed {
				r.link(e.To, e.From, e.Weight)
			} else {
				r.link(e.From, e.To, e.Weight)
			}
		}
	}
	return r
}

// Induced returns the subgraph on keep: those vertices (in g's order) and
// the edges between them.
func (g *Graph[K]) Induced(keep []K) *Graph[K] {
	in := make(map[K]bool, len(keep))
	for _, k := range keep {
		in[k] = true
	}
	s := &Graph[K]{directed: g.directed, adj: make(map[K][]Edge[K]), weight: make(map[[2]K]int)}
	for _, v := range g.order {
		if in[v] {
			s.AddVertex(v)
		}
	}
	for _, k := range keep {
		if !s.HasVertex(k) {
			s.AddVertex(k)
		}
	}
	for _, v := range g.order {
		if !in[v] {
			continue
		}
		for _, e := range g.adj[v] {
			if in[e.To] {
				s.link(e.From, e.To, e.Weight)
			}
		}
	}
	return s
}
