package mdtree

import (
	"github.com/go-graphs/moddecomp/graph"
	"github.com/go-graphs/moddecomp/naive"
)

// FromNaive translates naive.Decompose's directly-built tree into a
// Tree. naive.Node already carries label/op/range exactly as this
// package's Node does, so the translation is a structural copy, done
// over two explicit passes rather than a recursive walk.
func FromNaive(res *naive.Result) *Tree {
	order := make([]graph.VertexID, len(res.Vertices))
	copy(order, res.Vertices)

	mapping := make(map[*naive.Node]*Node)
	stack := []*naive.Node{res.Root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		mapping[n] = &Node{leaf: n.Leaf, label: n.Label, op: n.Op, begin: n.Begin, end: n.End}
		stack = append(stack, n.Children...)
	}

	for n, out := range mapping {
		if len(n.Children) == 0 {
			continue
		}
		out.children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			cn := mapping[c]
			cn.parent = out
			out.children[i] = cn
		}
	}

	return &Tree{order: order, root: mapping[res.Root]}
}
