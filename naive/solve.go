package naive

import (
	"github.com/go-graphs/moddecomp/graph"
	"github.com/go-graphs/moddecomp/mdop"
)

// job is one pending node of the tree under construction: the [begin,
// end) range of order it owns, paired with the *Node it will populate.
// Processed from a FIFO queue rather than call-stack recursion.
type job struct {
	node       *Node
	begin, end int
}

// Decompose runs the implication-class solver of Buer and Mohring over
// ix, producing a tree directly (no intermediate compute-tree): singleton
// ranges become leaves, a disconnected range becomes PARALLEL over its
// components, a range whose complement is disconnected becomes SERIES
// over the complement's components, and anything else is PRIME, split
// by the unique implication class whose restricted row-support covers
// the whole range.
func Decompose(ix *graph.Indexed) *Result {
	n := ix.N()
	a := ComputeImplicationMatrix(ix)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	root := &Node{}
	queue := []job{{node: root, begin: 0, end: n}}

	for len(queue) > 0 {
		j := queue[0]
		queue = queue[1:]
		j.node.Begin, j.node.End = j.begin, j.end

		if j.end-j.begin == 1 {
			j.node.Leaf = true
			j.node.Label = ix.Label(order[j.begin])
			continue
		}

		xs := append([]int(nil), order[j.begin:j.end]...)

		var parts [][]int
		switch {
		case !isConnected(xs, func(i, k int) bool { return ix.HasEdge(xs[i], xs[k]) }):
			j.node.Op = mdop.Parallel
			parts = connectedComponents(ix, xs)
		case !isConnected(xs, func(i, k int) bool { return !ix.HasEdge(xs[i], xs[k]) }):
			j.node.Op = mdop.Series
			parts = complementConnectedComponents(ix, xs)
		default:
			j.node.Op = mdop.Prime
			parts = primeParts(a, xs)
		}

		idx := j.begin
		for _, part := range parts {
			copy(order[idx:idx+len(part)], part)
			child := &Node{}
			j.node.Children = append(j.node.Children, child)
			queue = append(queue, job{node: child, begin: idx, end: idx + len(part)})
			idx += len(part)
		}
	}

	vertices := make([]graph.VertexID, n)
	for i, v := range order {
		vertices[i] = ix.Label(v)
	}
	return &Result{Vertices: vertices, Root: root}
}

// primeParts finds the unique implication class whose row-support,
// restricted to xs, covers every vertex of xs, then partitions xs by
// equality of that class's membership row.
func primeParts(a [][]int, xs []int) [][]int {
	cnt := make(map[int]int)
	targetClass := -1
	for _, u := range xs {
		seen := make(map[int]bool)
		for _, x := range xs {
			k := a[u][x]
			if k == 0 || seen[k] {
				continue
			}
			seen[k] = true
			cnt[k]++
			if cnt[k] == len(xs) {
				targetClass = k
			}
		}
	}
	if targetClass < 0 {
		panic("naive: no implication class covers every vertex of a prime subproblem")
	}

	rows := make([][]int, len(xs))
	for i, u := range xs {
		row := make([]int, len(xs))
		for j, v := range xs {
			if a[u][v] == targetClass {
				row[j] = 1
			}
		}
		rows[i] = row
	}

	classes := equivalentClasses(rows)
	parts := make([][]int, len(classes))
	for i, class := range classes {
		part := make([]int, len(class))
		for k, idx := range class {
			part[k] = xs[idx]
		}
		parts[i] = part
	}
	return parts
}
