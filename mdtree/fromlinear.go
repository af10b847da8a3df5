package mdtree

import (
	"github.com/go-graphs/moddecomp/compute"
	"github.com/go-graphs/moddecomp/forest"
	"github.com/go-graphs/moddecomp/graph"
)

// FromLinear translates the compute-tree compute.Run produced (rooted at
// root, addressed into f) into a Tree, using ix to recover each vertex's
// original external label.
//
// Leaves are built first, in the forest's right-to-left leaf order, then
// internal nodes are built bottom-up over a reversed BFS pass so every
// child mapping is already populated by the time its parent is visited.
func FromLinear(f *forest.Forest[*compute.Data], root forest.NodeID, ix *graph.Indexed) *Tree {
	leaves := f.Leaves(root)
	order := make([]graph.VertexID, len(leaves))
	mapping := make(map[forest.NodeID]*Node, len(leaves))

	for i, id := range leaves {
		v := f.Data(id).Vertex
		order[i] = ix.Label(v)
		mapping[id] = &Node{leaf: true, label: order[i], begin: i, end: i + 1}
	}

	bfs := f.BFS(root)
	for i := len(bfs) - 1; i >= 0; i-- {
		id := bfs[i]
		d := f.Data(id)
		if d.IsVertex() {
			continue
		}

		children := f.Children(id)
		node := &Node{op: d.Op, children: make([]*Node, len(children))}
		for j, c := range children {
			cn := mapping[c]
			cn.parent = node
			node.children[len(children)-1-j] = cn
		}
		node.begin, node.end = node.children[0].begin, node.children[0].end
		for _, cn := range node.children[1:] {
			if cn.begin < node.begin {
				node.begin = cn.begin
			}
			if cn.end > node.end {
				node.end = cn.end
			}
		}
		mapping[id] = node
	}

	return &Tree{order: order, root: mapping[root]}
}
