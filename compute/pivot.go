package compute

import "github.com/go-graphs/moddecomp/forest"

// processNeighbors walks pivot's graph neighbors, routing each one
// according to what the solver already knows about it: a visited vertex
// just extends the alpha-list, an unvisited sibling within currentProb
// moves into nbrProb, and anything else gets pulled forward into the
// layer ahead of it.
func (st *state) processNeighbors(pivot int, currentProb, nbrProb forest.NodeID) {
	f := st.f
	for _, nbr := range st.g.Neighbors(pivot) {
		switch {
		case st.visited[nbr]:
			st.addAlpha(nbr, pivot)
		case f.Parent(st.vertexNodes[nbr]) == currentProb:
			if nbrProb == forest.Nil {
				invariantf("compute: processNeighbors: sibling %d needs a neighbor problem", nbr)
			}
			f.MoveTo(st.vertexNodes[nbr], nbrProb)
		default:
			st.pullForward(nbr)
		}
	}
}

// isPivotLayer reports whether node is the problem layer introduced to
// hold a single pivot vertex: its parent is a Problem whose stored pivot
// equals node's own first child's vertex.
func (st *state) isPivotLayer(node forest.NodeID) bool {
	f := st.f
	p := f.Parent(node)
	fc := f.FirstChild(node)
	if p == forest.Nil || fc == forest.Nil {
		return false
	}
	pd := f.Data(p)
	return pd.IsProblem() && pd.Vertex == f.Data(fc).Vertex
}

// pullForward moves v's vertex node into the layer immediately ahead of
// its current one, creating a fresh connected layer first if the
// preceding one is already active or is itself a pivot layer. Nothing
// moves if v's current layer is already connected, or if the preceding
// layer is not connected and no fresh layer was created.
func (st *state) pullForward(v int) {
	f := st.f
	currentLayer := f.Parent(st.vertexNodes[v])
	if currentLayer == forest.Nil {
		invariantf("compute: pullForward: vertex %d has no enclosing layer", v)
	}
	if f.Data(currentLayer).Connected {
		return
	}
	if !f.Data(currentLayer).IsProblem() {
		invariantf("compute: pullForward: layer for vertex %d is not a problem", v)
	}

	prevLayer := f.Left(currentLayer)
	if prevLayer == forest.Nil {
		invariantf("compute: pullForward: vertex %d has no preceding layer", v)
	}

	if f.Data(prevLayer).Active || st.isPivotLayer(prevLayer) {
		newLayer := f.CreateNode(newProblemData(true))
		f.MoveToBefore(newLayer, currentLayer)
		prevLayer = newLayer
	}

	if f.Data(prevLayer).Connected {
		f.MoveTo(st.vertexNodes[v], prevLayer)
	}

	if f.IsLeaf(currentLayer) {
		f.Detach(currentLayer)
		f.Remove(currentLayer)
	}
}

// doPivot splits prob around pivot into three layers under a fresh
// replacement node: the pivot itself, its neighbors within prob, and
// everything else (left behind in prob). The layers are moved in as the
// leftovers, then the pivot, then the neighbors; since MoveTo inserts at
// the front, the final left-to-right child order is neighbors, pivot,
// leftovers.
func (st *state) doPivot(prob forest.NodeID, pivot int) forest.NodeID {
	f := st.f

	replacement := f.CreateNode(f.Data(prob).Copy())
	f.Swap(prob, replacement)
	f.MoveTo(prob, replacement)
	f.Data(replacement).Vertex = pivot

	pd := f.Data(prob)
	pd.Active = false
	pd.Connected = false
	pd.Vertex = -1

	pivotProb := f.CreateNode(newProblemData(true))
	f.MoveTo(pivotProb, replacement)
	f.MoveTo(st.vertexNodes[pivot], pivotProb)

	nbrProb := f.CreateNode(newProblemData(true))
	f.MoveTo(nbrProb, replacement)
	st.processNeighbors(pivot, prob, nbrProb)

	if f.IsLeaf(prob) {
		f.Detach(prob)
		f.Remove(prob)
	}
	if f.IsLeaf(nbrProb) {
		f.Detach(nbrProb)
		f.Remove(nbrProb)
	}

	return replacement
}
