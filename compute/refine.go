package compute

import (
	"github.com/go-graphs/moddecomp/forest"
	"github.com/go-graphs/moddecomp/mdop"
)

// refine runs RefineStage over prob: it numbers prob's descendants by
// component and by tree, then refines with every leaf under prob in
// turn.
func (st *state) refine(prob forest.NodeID) {
	st.numberByComp(prob)
	st.numberByTree(prob)

	for _, leaf := range st.f.Leaves(prob) {
		st.refineWith(prob, st.f.Data(leaf).Vertex)
	}
}

// numberByComp assigns a component number to every descendant of prob.
// Children left of the pivot are grouped as if the layer were SERIES,
// children right of it as if PARALLEL: a child whose own operation type
// matches the side's rule contributes one number per grandchild: any
// other child (mismatched type, or a leaf) contributes a single number
// for its whole subtree.
func (st *state) numberByComp(prob forest.NodeID) {
	f := st.f
	children := f.Children(prob)
	pivotVertex := f.Data(prob).Vertex

	pivotIdx := -1
	for i, c := range children {
		if cd := f.Data(c); cd.IsVertex() && cd.Vertex == pivotVertex {
			pivotIdx = i
		}
	}
	if pivotIdx < 0 {
		invariantf("compute: numberByComp: no pivot child in problem %d", prob)
	}

	next := 0
	for i, c := range children {
		switch {
		case i == pivotIdx:
			f.Data(c).CompNumber = next
			next++
		case i < pivotIdx:
			next = st.numberSide(c, mdop.Series, next)
		default:
			next = st.numberSide(c, mdop.Parallel, next)
		}
	}
}

func (st *state) numberSide(c forest.NodeID, side mdop.OpType, next int) int {
	f := st.f
	cd := f.Data(c)
	if cd.IsOperation() && cd.Op == side {
		for _, gc := range f.Children(c) {
			st.assignNumber(gc, next)
			next++
		}
		return next
	}
	st.assignNumber(c, next)
	return next + 1
}

func (st *state) assignNumber(root forest.NodeID, n int) {
	for _, x := range st.f.DFSPreorder(root) {
		st.f.Data(x).CompNumber = n
	}
}

// numberByTree assigns each direct child of prob a distinct tree number,
// propagated down to every descendant.
func (st *state) numberByTree(prob forest.NodeID) {
	f := st.f
	for i, c := range f.Children(prob) {
		for _, x := range f.DFSPreorder(c) {
			f.Data(x).TreeNumber = i
		}
	}
}

// maxSubtrees implements the charging argument: a node is "charged" if
// it is in nodes, or if every one of its children is charged. It
// returns the maximal charged nodes — those whose parent (if any) is
// not itself charged.
func (st *state) maxSubtrees(nodes []forest.NodeID) []forest.NodeID {
	f := st.f
	fullCharged := append([]forest.NodeID(nil), nodes...)
	var touched []forest.NodeID

	for i := 0; i < len(fullCharged); i++ {
		p := f.Parent(fullCharged[i])
		if p == forest.Nil {
			continue
		}
		pd := f.Data(p)
		if pd.NumMarks == 0 {
			touched = append(touched, p)
		}
		pd.NumMarks++
		if pd.NumMarks == f.NumChildren(p) {
			fullCharged = append(fullCharged, p)
		}
	}

	var maximal []forest.NodeID
	for _, n := range fullCharged {
		p := f.Parent(n)
		if p == forest.Nil || f.Data(p).NumMarks != f.NumChildren(p) {
			maximal = append(maximal, n)
		}
	}

	for _, p := range touched {
		f.Data(p).NumMarks = 0
	}
	return maximal
}

// siblingGroup is one grouped maximal subtree ready for refine_one_node:
// either an original node (singleton group) or a freshly created
// wrapper standing in for several siblings absorbed together.
type siblingGroup struct {
	node     forest.NodeID
	newPrime bool
}

// groupSiblings partitions nodes (the output of maxSubtrees) by parent.
// Members that are already direct children of prob form singleton
// groups on their own. Members sharing some other parent are pulled to
// the front of that parent's children (preserving their relative
// order); a lone marked child is itself a singleton group, while two or
// more are wrapped under a freshly created copy of the parent, flagged
// new_prime if the parent was a PRIME operation.
func (st *state) groupSiblings(prob forest.NodeID, nodes []forest.NodeID) []siblingGroup {
	f := st.f
	var groups []siblingGroup

	byParent := make(map[forest.NodeID]map[forest.NodeID]bool)
	var parentOrder []forest.NodeID
	for _, n := range nodes {
		p := f.Parent(n)
		if p == prob {
			groups = append(groups, siblingGroup{node: n})
			continue
		}
		if byParent[p] == nil {
			byParent[p] = make(map[forest.NodeID]bool)
			parentOrder = append(parentOrder, p)
		}
		byParent[p][n] = true
	}

	for _, p := range parentOrder {
		members := byParent[p]
		var ordered []forest.NodeID
		for c := f.FirstChild(p); c != forest.Nil; c = f.Right(c) {
			if members[c] {
				ordered = append(ordered, c)
			}
		}
		for i := len(ordered) - 1; i >= 0; i-- {
			f.MakeFirstChild(ordered[i])
		}

		if len(ordered) == 1 {
			groups = append(groups, siblingGroup{node: ordered[0]})
			continue
		}

		pd := f.Data(p)
		wrapper := f.CreateNode(pd.Copy())
		for i := len(ordered) - 1; i >= 0; i-- {
			f.MoveTo(ordered[i], wrapper)
		}
		f.MoveTo(wrapper, p)
		groups = append(groups, siblingGroup{node: wrapper, newPrime: pd.Op == mdop.Prime})
	}

	return groups
}

// refineWith refines prob using v as the refiner: every maximal subtree
// of v's alpha-list gets pulled toward the side (left of the pivot, or
// right) its tree number indicates.
func (st *state) refineWith(prob forest.NodeID, v int) {
	f := st.f
	alphaV := st.alpha[v]
	if len(alphaV) == 0 {
		return
	}

	nodes := make([]forest.NodeID, 0, len(alphaV))
	for w := range alphaV {
		nodes = append(nodes, st.vertexNodes[w])
	}

	subtrees := st.maxSubtrees(nodes)
	groups := st.groupSiblings(prob, subtrees)

	pivotVertex := f.Data(prob).Vertex
	pivotTN := f.Data(st.vertexNodes[pivotVertex]).TreeNumber
	refinerTN := f.Data(st.vertexNodes[v]).TreeNumber

	for _, g := range groups {
		tn := f.Data(g.node).TreeNumber
		var split SplitType
		if tn < pivotTN || refinerTN < tn {
			split = SplitLeft
		} else {
			split = SplitRight
		}
		st.refineOneNode(prob, g.node, split, g.newPrime)
	}
}

// refineOneNode performs a single refinement step: it moves node one
// level toward prob's boundary (if its parent calls for restructuring),
// then marks node and every ancestor up to (excluding) prob with split.
func (st *state) refineOneNode(prob, node forest.NodeID, split SplitType, newPrime bool) {
	f := st.f
	par := f.Parent(node)
	if par == forest.Nil {
		invariantf("compute: refineOneNode: node %d has no parent", node)
	}
	if f.Data(par).IsProblem() {
		// node is already the root of its tree.
		return
	}

	newSibling := forest.Nil

	switch {
	case f.Data(f.Parent(par)).IsProblem():
		// par is the root of its tree: node splits off to sit beside it.
		if split == SplitLeft {
			f.MoveToBefore(node, par)
		} else {
			f.MoveToAfter(node, par)
		}
		st.decSplitCount(par, f.Data(node).Split)
		newSibling = par
		if f.HasOnlyOneChild(par) {
			st.spliceOut(par)
			newSibling = forest.Nil
		}

	case f.Data(par).IsOperation() && f.Data(par).Op != mdop.Prime:
		replacement := f.CreateNode(f.Data(par).Copy())
		f.Swap(par, replacement)
		f.MoveTo(node, replacement)
		f.MoveTo(par, replacement)

		for _, c := range [2]forest.NodeID{par, node} {
			st.incSplitCount(replacement, f.Data(c).Split)
		}
		st.decSplitCount(par, f.Data(node).Split)
		newSibling = par

	default:
		// par is PRIME: no structural change.
	}

	st.addSplitMark(node, split, newPrime)
	st.markAncestorsBySplit(prob, node, split)
	if newSibling != forest.Nil {
		st.addSplitMark(newSibling, split, true)
	}
}

func (st *state) incSplitCount(parent forest.NodeID, s SplitType) {
	d := st.f.Data(parent)
	if s == SplitLeft || s == SplitMixed {
		d.NumLeftSplitChildren++
	}
	if s == SplitRight || s == SplitMixed {
		d.NumRightSplitChildren++
	}
}

func (st *state) decSplitCount(parent forest.NodeID, s SplitType) {
	d := st.f.Data(parent)
	if s == SplitLeft || s == SplitMixed {
		d.NumLeftSplitChildren--
	}
	if s == SplitRight || s == SplitMixed {
		d.NumRightSplitChildren--
	}
}

// spliceOut removes node from the tree, splicing its children up into
// its former place. Requires node's children (if any) to already form a
// single contiguous replacement, which ReplaceByChildren handles.
func (st *state) spliceOut(node forest.NodeID) {
	st.f.ReplaceByChildren(node)
	st.f.Remove(node)
}

// addSplitMark marks node with split, crediting its operation-node
// parent's split-child count. If shouldRecurse and node is itself a
// PRIME operation, every one of its unmarked children is marked too.
func (st *state) addSplitMark(node forest.NodeID, split SplitType, shouldRecurse bool) {
	f := st.f
	d := f.Data(node)
	if !d.IsSplitMarked(split) {
		d.SetSplitMark(split)
		if p := f.Parent(node); p != forest.Nil && f.Data(p).IsOperation() {
			st.incSplitCount(p, split)
		}
	}
	if shouldRecurse && d.IsOperation() && d.Op == mdop.Prime {
		for _, c := range f.Children(node) {
			cd := f.Data(c)
			if !cd.IsSplitMarked(split) {
				cd.SetSplitMark(split)
				st.incSplitCount(node, split)
			}
		}
	}
}

// markAncestorsBySplit marks every ancestor of node up to (but
// excluding) prob with split, recursively marking PRIME ancestors'
// other children along the way.
func (st *state) markAncestorsBySplit(prob, node forest.NodeID, split SplitType) {
	f := st.f
	for p := f.Parent(node); p != forest.Nil && p != prob; p = f.Parent(p) {
		st.addSplitMark(p, split, true)
	}
}
