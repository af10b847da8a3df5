package graph

import "sort"

// Indexed is a dense 0..n-1 relabeling of a Graph in sorted-label order,
// built once per decomposition. The original labels are preserved for
// output only. Both solvers (compute, naive) work exclusively in terms
// of Indexed.
type Indexed struct {
	order []VertexID
	index map[VertexID]int
	adj   [][]int
}

// NewIndexed builds the dense relabeling of g.
func NewIndexed(g Graph) *Indexed {
	order := g.Vertices()

	index := make(map[VertexID]int, len(order))
	for i, id := range order {
		index[id] = i
	}

	adj := make([][]int, len(order))
	for i, id := range order {
		nbrs := g.Neighbors(id)
		ia := make([]int, 0, len(nbrs))
		for _, n := range nbrs {
			ia = append(ia, index[n])
		}
		sort.Ints(ia)
		adj[i] = ia
	}

	return &Indexed{order: order, index: index, adj: adj}
}

// N returns the number of vertices.
func (ix *Indexed) N() int { return len(ix.order) }

// Label returns the original external label of internal vertex i.
func (ix *Indexed) Label(i int) VertexID { return ix.order[i] }

// Index returns the internal vertex for external label id.
func (ix *Indexed) Index(id VertexID) int { return ix.index[id] }

// Neighbors returns the internal neighbor indices of vertex i, ascending.
func (ix *Indexed) Neighbors(i int) []int { return ix.adj[i] }

// HasEdge reports whether internal vertices i and j are adjacent.
func (ix *Indexed) HasEdge(i, j int) bool {
	nbrs := ix.adj[i]
	k := sort.SearchInts(nbrs, j)
	return k < len(nbrs) && nbrs[k] == j
}
