package mdtree

import (
	"github.com/go-graphs/moddecomp/graph"
	"github.com/go-graphs/moddecomp/mdop"
)

// Node is one node of a modular decomposition tree: either a vertex leaf
// (Label valid, Children empty) or an internal node labeled with an
// mdop.OpType, carrying the half-open [Begin, End) range of Tree.order
// its subtree's leaves occupy.
type Node struct {
	leaf     bool
	label    graph.VertexID
	op       mdop.OpType
	begin    int
	end      int
	parent   *Node
	children []*Node
}

// IsLeaf reports whether n is a vertex leaf.
func (n *Node) IsLeaf() bool { return n.leaf }

// Label returns n's vertex label. Valid only when n.IsLeaf().
func (n *Node) Label() graph.VertexID { return n.label }

// Op returns n's operation kind. Valid only when !n.IsLeaf().
func (n *Node) Op() mdop.OpType { return n.op }

// Children returns n's children left to right. Empty for a leaf.
func (n *Node) Children() []*Node { return n.children }

// Begin and End report the half-open range of the tree's flat vertex
// order that n's subtree spans.
func (n *Node) Begin() int { return n.begin }
func (n *Node) End() int   { return n.end }

// Tree is a complete modular decomposition tree: a Root node plus the
// flat, left-to-right vertex order its every subtree's [Begin, End)
// range is indexed against.
type Tree struct {
	order []graph.VertexID
	root  *Node
}

// Root returns the tree's root node.
func (t *Tree) Root() *Node { return t.root }

// Order returns the flat left-to-right vertex permutation underlying
// every node's [Begin, End) range — the factorizing permutation.
func (t *Tree) Order() []graph.VertexID {
	out := make([]graph.VertexID, len(t.order))
	copy(out, t.order)
	return out
}
