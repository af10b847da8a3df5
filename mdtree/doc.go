// Package mdtree is the modular decomposition engine's public surface:
// the output tree type, canonical sort, string rendering, and the
// ModularDecomposition entry point that selects and runs one of the two
// solvers (compute's linear-time pivot/refine/promote/assemble pipeline,
// or naive's O(n^4) implication-class solver) and translates its
// internal tree into this package's Tree/Node shape.
package mdtree
