// Package naive implements the O(n^4) modular decomposition solver
// from Buer and Mohring, "A Fast Algorithm for the Decomposition
// of Graphs and Posets" (1983): an implication matrix over the edges,
// built by BFS over the "forcing" relation, followed by a direct
// recursive partition of each vertex subset into PARALLEL, SERIES, or
// PRIME children.
//
// This solver is independent of compute's linear-time pivot/refine/
// promote/assemble pipeline; the two are required to agree on the
// resulting tree shape.
package naive
