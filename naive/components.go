package naive

import (
	"sort"

	"github.com/spakin/disjoint"

	"github.com/go-graphs/moddecomp/graph"
)

// connectedComponents partitions xs into the connected components of the
// subgraph G[xs] induces over ix.
func connectedComponents(ix *graph.Indexed, xs []int) [][]int {
	return componentsOf(xs, func(i, j int) bool { return ix.HasEdge(xs[i], xs[j]) })
}

// complementConnectedComponents partitions xs into the connected
// components of the complement of G[xs].
func complementConnectedComponents(ix *graph.Indexed, xs []int) [][]int {
	return componentsOf(xs, func(i, j int) bool { return !ix.HasEdge(xs[i], xs[j]) })
}

// isConnected reports whether G[xs] (or its complement, depending on
// adjacent) is a single connected component.
func isConnected(xs []int, adjacent func(i, j int) bool) bool {
	if len(xs) <= 1 {
		return true
	}
	return len(componentsOf(xs, adjacent)) == 1
}

// componentsOf unions every pair of positions xs reports as adjacent via
// a disjoint.Set, then reads off the resulting partition. Component
// order is stable (by each component's smallest vertex) so repeated
// runs produce the same pre-sort tree.
func componentsOf(xs []int, adjacent func(i, j int) bool) [][]int {
	elems := make([]*disjoint.Element, len(xs))
	for i := range elems {
		elems[i] = disjoint.NewElement()
	}
	for i := 0; i < len(xs); i++ {
		for j := i + 1; j < len(xs); j++ {
			if adjacent(i, j) {
				disjoint.Union(elems[i], elems[j])
			}
		}
	}

	groups := make(map[*disjoint.Element][]int)
	var order []*disjoint.Element
	for i, e := range elems {
		root := e.Find()
		if _, ok := groups[root]; !ok {
			order = append(order, root)
		}
		groups[root] = append(groups[root], xs[i])
	}

	out := make([][]int, 0, len(order))
	for _, root := range order {
		part := groups[root]
		sort.Ints(part)
		out = append(out, part)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}
