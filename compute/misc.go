package compute

import (
	"github.com/go-graphs/moddecomp/forest"
	"github.com/go-graphs/moddecomp/mdop"
)

// removeExtraComponents scans prob's children from the left for the
// first subproblem marked disconnected, detaches its sole child (the
// "extra" component to be merged back in by mergeComponents once
// assembly finishes), and removes the now-empty wrapper. Returns
// forest.Nil if every child is connected.
func (st *state) removeExtraComponents(prob forest.NodeID) forest.NodeID {
	f := st.f
	sub := f.FirstChild(prob)
	for sub != forest.Nil && f.Data(sub).Connected {
		sub = f.Right(sub)
	}
	if sub == forest.Nil {
		return forest.Nil
	}

	extra := f.FirstChild(sub)
	if extra == forest.Nil {
		invariantf("compute: removeExtraComponents: disconnected subproblem is empty")
	}
	f.Detach(extra)
	if !f.IsLeaf(sub) {
		invariantf("compute: removeExtraComponents: subproblem held more than one component")
	}
	f.Detach(sub)
	f.Remove(sub)

	return extra
}

// removeLayers unwraps every direct child of prob, splicing each
// child's own children up into prob's place.
func (st *state) removeLayers(prob forest.NodeID) {
	f := st.f
	for _, c := range f.Children(prob) {
		f.ReplaceByChildren(c)
		f.Remove(c)
	}
}

// completeAlphaLists symmetrizes the alpha relation over prob's leaves:
// if u recorded w as a neighbor outside its own layer, w records u back.
func (st *state) completeAlphaLists(prob forest.NodeID) {
	for _, leaf := range st.f.Leaves(prob) {
		v := st.f.Data(leaf).Vertex
		for a := range st.alpha[v] {
			st.addAlpha(a, v)
		}
	}
}

// mergeComponents reattaches the extra disconnected component (if any)
// removed earlier by removeExtraComponents, merging it with prob's
// now-assembled result.
func (st *state) mergeComponents(prob, extra forest.NodeID) {
	f := st.f
	if extra == forest.Nil {
		return
	}
	fc := f.FirstChild(prob)
	if fc == forest.Nil {
		invariantf("compute: mergeComponents: prob has no assembled result")
	}

	if f.Data(extra).Op == mdop.Parallel {
		if f.Data(fc).IsOperation() && f.Data(fc).Op == mdop.Parallel {
			f.AddChildrenFrom(extra, fc)
			f.Detach(fc)
			f.Remove(fc)
		} else {
			f.MoveTo(fc, extra)
		}
		f.MoveTo(extra, prob)
		return
	}

	newRoot := f.CreateNode(newOperationData(mdop.Parallel))
	f.MoveTo(newRoot, prob)
	f.MoveTo(extra, newRoot)
	f.MoveTo(fc, newRoot)
}
