package naive

import (
	"github.com/go-graphs/moddecomp/graph"
	"github.com/go-graphs/moddecomp/mdop"
)

// Node is one node of the tree this solver produces directly: either a
// vertex leaf (Label valid) or an operation node (Op valid), carrying the
// half-open [Begin, End) range it occupies in Result.Vertices. Built
// during the same queue-driven pass that partitions each vertex subset.
type Node struct {
	Leaf     bool
	Label    graph.VertexID
	Op       mdop.OpType
	Begin    int
	End      int
	Children []*Node
}

// Result is the output of Decompose: the tree root plus the flat,
// left-to-right vertex order its leaf intervals are indexed against.
type Result struct {
	Vertices []graph.VertexID
	Root     *Node
}
