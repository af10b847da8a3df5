package compute

import (
	"github.com/go-graphs/moddecomp/forest"
	"github.com/go-graphs/moddecomp/mdop"
)

// assemble runs AssembleStage over prob: it builds the factorizing
// permutation's module boundaries from prob's children, assembles them
// into a single tree, flattens any degenerate duplicates, and installs
// the result as prob's sole child.
func (st *state) assemble(prob forest.NodeID) {
	f := st.f
	ps := f.Children(prob)
	if len(ps) == 0 {
		invariantf("compute: assemble: problem %d has no children", prob)
	}

	pivotVertex := f.Data(prob).Vertex
	pivotIdx := -1
	for i, p := range ps {
		if pd := f.Data(p); pd.IsVertex() && pd.Vertex == pivotVertex {
			pivotIdx = i
		}
	}
	if pivotIdx < 0 {
		invariantf("compute: assemble: no pivot child in problem %d", prob)
	}
	k := len(ps)

	lcocomp := st.leftCocompFragments(ps, pivotIdx)
	rcomp := st.rightCompFragments(ps, pivotIdx, k)
	rlayer := st.rightLayerNeighbor(ps, pivotIdx, k)
	neighbors := st.factPermEdges(ps)
	mu := st.computeMu(ps, pivotIdx, neighbors)
	boundaries := st.delineate(pivotIdx, k, lcocomp, rcomp, rlayer, mu)

	root := st.assembleTree(ps, pivotIdx, boundaries)
	st.removeDegenerateDuplicates(root)

	f.ReplaceChildren(prob, root)
}

// leftCocompFragments flags, for each index in (0, pivotIdx), whether it
// shares a refine-assigned component number with its left neighbor.
func (st *state) leftCocompFragments(ps []forest.NodeID, pi int) []bool {
	f := st.f
	out := make([]bool, len(ps))
	for i := 1; i < pi; i++ {
		a, b := f.Data(ps[i-1]).CompNumber, f.Data(ps[i]).CompNumber
		out[i] = a == b && a >= 0
	}
	return out
}

// rightCompFragments flags, for each index in [pivotIdx+1, k-1), whether
// it shares a component number with its right neighbor.
func (st *state) rightCompFragments(ps []forest.NodeID, pi, k int) []bool {
	f := st.f
	out := make([]bool, k)
	for i := pi + 1; i < k-1; i++ {
		a, b := f.Data(ps[i]).CompNumber, f.Data(ps[i+1]).CompNumber
		out[i] = a == b && a >= 0
	}
	return out
}

// rightLayerNeighbor flags, for each index in [pivotIdx+1, k), whether
// some leaf under ps[i] has an alpha-neighbor whose own tree lies
// further right than i.
func (st *state) rightLayerNeighbor(ps []forest.NodeID, pi, k int) []bool {
	f := st.f
	out := make([]bool, k)
	for i := pi + 1; i < k; i++ {
		tn := f.Data(ps[i]).TreeNumber
		for _, leaf := range f.Leaves(ps[i]) {
			v := f.Data(leaf).Vertex
			for a := range st.alpha[v] {
				if f.Data(st.vertexNodes[a]).TreeNumber > tn {
					out[i] = true
					break
				}
			}
			if out[i] {
				break
			}
		}
	}
	return out
}

// factPermEdges reassigns comp_number = i to every leaf under ps[i] (the
// refine-era numbering is no longer needed once the fragment flags
// above are captured), then returns, for each i, the set of indices j
// such that ps[i] and ps[j] are completely joined (every leaf of one is
// an alpha-neighbor of every leaf of the other).
func (st *state) factPermEdges(ps []forest.NodeID) [][]int {
	f := st.f
	k := len(ps)

	for i, p := range ps {
		for _, leaf := range f.Leaves(p) {
			f.Data(leaf).CompNumber = i
		}
	}

	size := make([]int, k)
	for i, p := range ps {
		size[i] = len(f.Leaves(p))
	}

	neighbors := make([][]int, k)
	for i, p := range ps {
		marks := make(map[int]int)
		for _, leaf := range f.Leaves(p) {
			v := f.Data(leaf).Vertex
			for a := range st.alpha[v] {
				marks[f.Data(st.vertexNodes[a]).CompNumber]++
			}
		}
		for j, m := range marks {
			if size[i]*size[j] == m {
				neighbors[i] = append(neighbors[i], j)
			}
		}
	}
	return neighbors
}

// computeMu computes, for each index i, the furthest index its
// factorizing-permutation edges reach: mu[i] = pi for i < pi (every
// left index trivially reaches the pivot) and 0 otherwise, tightened by
// sweeping the edges out of the left half.
func (st *state) computeMu(ps []forest.NodeID, pi int, neighbors [][]int) []int {
	k := len(ps)
	mu := make([]int, k)
	for i := range mu {
		if i < pi {
			mu[i] = pi
		}
	}
	for i := 0; i < pi; i++ {
		for _, j := range neighbors[i] {
			if mu[j] == i {
				mu[j] = i + 1
			}
			if j > mu[i] {
				mu[i] = j
			}
		}
	}
	return mu
}

// boundary is one emitted module: the [left, right] range of ps indices
// it spans, pivot included.
type boundary struct {
	left, right int
}

// delineate expands the window around the pivot outward, alternating
// series compose (absorb a non-cofragmented left neighbor whose reach
// doesn't exceed the window), parallel compose (symmetric on the
// right), and prime compose (a worklist that keeps absorbing until
// every absorbed element's mu range lies inside the window). A
// right-layer neighbor absorbed during prime compose forces the whole
// remaining range into one module.
func (st *state) delineate(pi, k int, lcocomp, rcomp, rlayer []bool, mu []int) []boundary {
	lb, rb := pi-1, pi+1
	leftLastIn, rightLastIn := pi, pi
	var out []boundary

	for lb >= 0 && rb < k {
		moved := false

		for lb >= 0 && mu[lb] <= rightLastIn && !lcocomp[lb] {
			leftLastIn = lb
			lb--
			moved = true
		}
		if moved {
			out = append(out, boundary{leftLastIn, rightLastIn})
			continue
		}

		for rb < k && leftLastIn <= mu[rb] && !rcomp[rb] && !rlayer[rb] {
			rightLastIn = rb
			rb++
			moved = true
		}
		if moved {
			out = append(out, boundary{leftLastIn, rightLastIn})
			continue
		}

		// Prime compose. Absorbing a left element may drag in right
		// elements its factorizing-permutation edges reach, and vice
		// versa; the two queues hold absorbed elements whose mu ranges
		// have not been checked yet. A cocomponent (component) fragment
		// chain is always absorbed whole.
		var leftQ, rightQ []int
		forcedFull := false

		absorbLeft := func() {
			for {
				leftQ = append(leftQ, lb)
				leftLastIn = lb
				lb--
				if !lcocomp[leftLastIn] {
					break
				}
			}
		}
		absorbRight := func() {
			for {
				if rlayer[rb] {
					forcedFull = true
				}
				rightQ = append(rightQ, rb)
				rightLastIn = rb
				rb++
				if !rcomp[rightLastIn] {
					break
				}
			}
		}

		absorbLeft()
		for !forcedFull && (len(leftQ) > 0 || len(rightQ) > 0) {
			if len(leftQ) > 0 {
				x := leftQ[0]
				leftQ = leftQ[1:]
				for !forcedFull && mu[x] > rightLastIn {
					absorbRight()
				}
			} else {
				y := rightQ[0]
				rightQ = rightQ[1:]
				for mu[y] < leftLastIn {
					absorbLeft()
				}
			}
		}

		if forcedFull {
			leftLastIn, rightLastIn = 0, k-1
			lb, rb = -1, k
		}
		out = append(out, boundary{leftLastIn, rightLastIn})
	}

	return out
}

// assembleTree builds the factorizing permutation's tree from ps,
// growing outward from the pivot through each boundary in turn, then
// wrapping whatever ps indices no boundary reached in one final SERIES
// (leftover on the left) or PARALLEL (leftover on the right) node.
func (st *state) assembleTree(ps []forest.NodeID, pi int, boundaries []boundary) forest.NodeID {
	f := st.f
	current := ps[pi]
	prevL, prevR := pi, pi

	for _, b := range boundaries {
		var op mdop.OpType
		switch {
		case b.left < prevL && b.right > prevR:
			op = mdop.Prime
		case b.left < prevL:
			op = mdop.Series
		default:
			op = mdop.Parallel
		}
		node := f.CreateNode(newOperationData(op))
		f.MoveTo(current, node)
		for i := b.left; i < prevL; i++ {
			f.MoveToBefore(ps[i], current)
		}
		for i := b.right; i > prevR; i-- {
			f.MoveToAfter(ps[i], current)
		}
		current = node
		prevL, prevR = b.left, b.right
	}

	k := len(ps)
	switch {
	case prevL > 0:
		node := f.CreateNode(newOperationData(mdop.Series))
		f.MoveTo(current, node)
		for i := 0; i < prevL; i++ {
			f.MoveToBefore(ps[i], current)
		}
		current = node
	case prevR < k-1:
		node := f.CreateNode(newOperationData(mdop.Parallel))
		f.MoveTo(current, node)
		for i := k - 1; i > prevR; i-- {
			f.MoveToAfter(ps[i], current)
		}
		current = node
	}

	return current
}

// removeDegenerateDuplicates flattens any non-PRIME operation node whose
// parent shares its operation type, splicing its children directly into
// the parent's place.
func (st *state) removeDegenerateDuplicates(root forest.NodeID) {
	f := st.f
	for _, n := range f.PostOrder(root) {
		nd := f.Data(n)
		if !nd.IsOperation() || nd.Op == mdop.Prime {
			continue
		}
		p := f.Parent(n)
		if p == forest.Nil {
			continue
		}
		pd := f.Data(p)
		if pd.IsOperation() && pd.Op == nd.Op {
			f.ReplaceByChildren(n)
			f.Remove(n)
		}
	}
}
