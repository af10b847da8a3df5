// Package moddecomp computes the modular decomposition of finite simple
// undirected graphs: the unique rooted tree of strong modules, labeled
// PARALLEL, SERIES, or PRIME.
//
// Two independent solvers are provided and are guaranteed to agree on the
// resulting tree shape:
//
//	naive/   — O(n^4) implication-class solver (Buer-Mohring, 1983)
//	compute/ — linear-time pivot/refine/promote/assemble solver
//
// Everything else is organized by concern:
//
//	graph/   — input graph abstraction: vertices, edges, dense relabeling
//	forest/  — the mutable ordered forest both solvers build their work on
//	mdop/    — the shared PARALLEL/SERIES/PRIME operation label
//	mdtree/  — the output tree, canonical sort, string rendering, and the
//	           public ModularDecomposition entry point
//
// Quick example:
//
//	s := graph.NewSimple()
//	s.AddEdge("a", "b")
//	s.AddEdge("b", "c")
//	t, err := mdtree.ModularDecomposition(s.Freeze())
//
// See DESIGN.md for the full design notes.
package moddecomp
