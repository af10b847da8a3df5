package mdtree

import "sort"

// Sort canonically reorders the tree in place: every node's children are
// arranged so that the child whose subtree contains the
// lexicographically smallest vertex label comes first, recursively. The
// flat vertex order (Tree.Order) is rewritten to match. Idempotent: a
// tree already in canonical order sorts to itself.
//
// Two passes over a single BFS level order: bottom-up to label every
// node with its subtree's smallest vertex label, then top-down to
// reorder children and recompute each node's [begin, end) range against
// the new flat order.
func (t *Tree) Sort() {
	levelOrder := t.levelOrder()

	minLabel := make(map[*Node]string, len(levelOrder))
	for i := len(levelOrder) - 1; i >= 0; i-- {
		n := levelOrder[i]
		if n.leaf {
			minLabel[n] = n.label
			continue
		}
		m := minLabel[n.children[0]]
		for _, c := range n.children[1:] {
			if cm := minLabel[c]; cm < m {
				m = cm
			}
		}
		minLabel[n] = m
	}

	for _, n := range levelOrder {
		if n.leaf {
			t.order[n.begin] = n.label
			continue
		}

		children := append([]*Node(nil), n.children...)
		sort.SliceStable(children, func(i, j int) bool {
			return minLabel[children[i]] < minLabel[children[j]]
		})

		offset := n.begin
		for _, c := range children {
			size := c.end - c.begin
			c.begin, c.end = offset, offset+size
			offset += size
		}
		n.children = children
	}
}

// levelOrder returns the tree's nodes in BFS order, parent before child.
func (t *Tree) levelOrder() []*Node {
	out := make([]*Node, 0)
	queue := []*Node{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		out = append(out, n)
		queue = append(queue, n.children...)
	}
	return out
}
