package dfs

import "errors"

// Visitation states of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex is not in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that a cycle was encountered during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirected is returned by TopologicalSort for an undirected graph.
	ErrUndirected = errors.New("dfs: graph must be directed")
)
