package graph

import "errors"

// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
var ErrVertexNotFound = errors.New("graph: vertex not found")

// Edge is a weighted connection From→To. Undirected graphs store each edge
// once per endpoint.
type Edge[K comparable] struct {
	From, To K
	Weight   int
}

// Option configures a Graph at construction.
type Option func(*config)

type config struct {
	directed bool
}

// WithDirected makes every edge one-way.
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}

// Graph is an adjacency-list graph keyed by K.
type Graph[K comparable] struct {
	directed bool
	order    []K
	adj      map[K][]Edge[K]
	weight   map[[2]K]int
}

// New creates an empty graph; undirected unless WithDirected is given.
func New[K comparable](opts ...Option) *Graph[K] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return &Graph[K]{
		directed: c.directed,
		adj:      make(map[K][]Edge[K]),
		weight:   make(map[[2]K]int),
	}
}
