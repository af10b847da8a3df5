// Package graph defines the input abstraction for the modular
// decomposition engine: a finite simple undirected graph exposing vertex
// count, sorted vertex iteration, and neighbor iteration.
//
// Graph file parsing, random graph generation, and complement-graph
// construction are deliberately not part of this package: callers build
// a Graph in-memory via Simple and hand it to the engine.
//
// Vertices are identified by an opaque external label (VertexID, a
// string). NewIndexed relabels them to a dense range 0..n-1 in sorted
// order; the original labels are preserved for output.
package graph
