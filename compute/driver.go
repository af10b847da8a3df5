package compute

import (
	"github.com/go-graphs/moddecomp/forest"
	"github.com/go-graphs/moddecomp/graph"
)

// state holds everything the driver and every stage function share
// while the linear-time solver runs over a single graph: the
// compute-tree forest, the densely-relabeled source graph, and the
// alpha-list / visited bookkeeping the outer loop maintains.
type state struct {
	f           *F
	g           *graph.Indexed
	vertexNodes []forest.NodeID
	alpha       []map[int]struct{}
	visited     []bool
}

func (st *state) addAlpha(v, a int) {
	if st.alpha[v] == nil {
		st.alpha[v] = make(map[int]struct{})
	}
	st.alpha[v][a] = struct{}{}
}

// Run executes the linear-time solver over g and returns the forest
// together with the root of the finished compute-tree: a Vertex or
// Operation node, never a Problem node, ready for mdtree's translation.
func Run(g *graph.Indexed) (*forest.Forest[*Data], forest.NodeID) {
	n := g.N()
	f := forest.New[*Data]()
	st := &state{
		f:           f,
		g:           g,
		vertexNodes: make([]forest.NodeID, n),
		alpha:       make([]map[int]struct{}, n),
		visited:     make([]bool, n),
	}

	mainProb := f.CreateNode(newProblemData(false))
	for v := n - 1; v >= 0; v-- {
		node := f.CreateNode(newVertexData(v))
		st.vertexNodes[v] = node
		f.MoveTo(node, mainProb)
	}

	return f, st.solve(mainProb)
}

// solve is the outer loop: it walks the forest depth-first, pivoting
// every problem it encounters whose first child is itself a vertex, and
// running refine/promote/assemble once a problem's children have all
// resolved into non-problem subtrees.
func (st *state) solve(mainProb forest.NodeID) forest.NodeID {
	f := st.f
	current := mainProb
	result := forest.Nil

	for current != forest.Nil {
		fc := f.FirstChild(current)
		if fc == forest.Nil {
			invariantf("compute: problem %d has no first child", current)
		}
		f.Data(current).Active = true

		if !f.Data(fc).IsProblem() {
			pivot := f.Data(fc).Vertex
			st.visited[pivot] = true

			if f.HasOnlyOneChild(current) {
				st.processNeighbors(pivot, current, forest.Nil)
			} else {
				replacement := st.doPivot(current, pivot)
				current = f.FirstChild(replacement)
				continue
			}
		} else {
			extra := st.removeExtraComponents(current)
			st.removeLayers(current)
			st.completeAlphaLists(current)
			st.refine(current)
			st.promote(current)
			st.assemble(current)
			st.mergeComponents(current, extra)

			newFc := f.FirstChild(current)
			if newFc == forest.Nil {
				invariantf("compute: problem %d resolved to nothing", current)
			}
			for _, c := range f.DFSPreorderReverse(newFc) {
				cd := f.Data(c)
				if cd.IsVertex() {
					st.alpha[cd.Vertex] = nil
				}
				cd.Clear()
			}
		}

		if f.NumRoots() != 1 {
			invariantf("compute: forest has %d roots mid-solve", f.NumRoots())
		}

		result = f.FirstChild(current)
		if f.IsLastChild(current) {
			current = f.Parent(current)
		} else {
			current = f.Right(current)
		}
	}

	resultParent := f.Parent(result)
	f.Detach(result)
	f.Remove(resultParent)
	return result
}
