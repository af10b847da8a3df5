// Package compute implements the linear-time pivot/refine/promote/assemble
// solver. It builds a compute-tree over a forest.Forest[*Data] whose nodes
// are tagged Vertex, Operation, or Problem, then hands the finished
// compute-tree to mdtree for translation into the public output shape.
//
// The stages run in the order the driver in driver.go lays out: pivoting a
// problem splits it into pivot/neighbor/non-neighbor subproblems, which
// recurse; once a subproblem's children have all resolved, refine,
// promote, and assemble collapse it into a single node representing its
// modular decomposition.
package compute
