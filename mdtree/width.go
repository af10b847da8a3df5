package mdtree

import "github.com/go-graphs/moddecomp/mdop"

// ModularWidth returns the maximum number of children of any PRIME node
// in the tree, or 0 if it has none.
func (t *Tree) ModularWidth() int {
	width := 0
	queue := []*Node{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if !n.leaf && n.op == mdop.Prime && len(n.children) > width {
			width = len(n.children)
		}
		queue = append(queue, n.children...)
	}
	return width
}
