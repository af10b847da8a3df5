package graph

import "errors"

// Sentinel errors for graph construction, declared alongside the types
// they guard.
var (
	// ErrEmptyVertexID indicates a vertex with an empty label was added.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrDuplicateVertex indicates AddVertex was called twice for the
	// same label.
	ErrDuplicateVertex = errors.New("graph: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a vertex
	// absent from the graph.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrSelfLoop indicates an edge from a vertex to itself, which
	// simple graphs do not allow.
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")

	// ErrParallelEdge indicates a second edge between an already
	// connected pair, which simple graphs do not allow.
	ErrParallelEdge = errors.New("graph: parallel edges are not allowed")

	// ErrFrozen indicates a mutation was attempted after Freeze.
	ErrFrozen = errors.New("graph: graph is frozen")
)

// VertexID is the external, opaque label a caller uses to identify a
// vertex. Internally the engine works with a dense index 0..n-1 in
// sorted VertexID order; the original VertexID is preserved for output.
type VertexID = string

// Graph is the abstract input to the modular decomposition engine: a
// finite simple undirected graph. No self-loops, no parallel edges.
type Graph interface {
	// Len returns the number of vertices.
	Len() int

	// Vertices returns the vertex labels in sorted order.
	Vertices() []VertexID

	// Neighbors returns the labels adjacent to v, in sorted order.
	Neighbors(v VertexID) []VertexID

	// HasEdge reports whether u and v are adjacent.
	HasEdge(u, v VertexID) bool
}
