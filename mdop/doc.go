// Package mdop defines OpType, the three-valued operation label shared by
// the compute-tree (package compute) and the output modular decomposition
// tree (package mdtree). Keeping it in its own package lets both trees
// agree on operation kinds without either one importing the other.
package mdop
