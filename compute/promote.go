package compute

import "github.com/go-graphs/moddecomp/forest"

// promote runs PromoteStage over prob: every direct child is promoted
// independently, first pulling LEFT-marked descendants out, then
// RIGHT-marked ones.
func (st *state) promote(prob forest.NodeID) {
	st.promoteOneDirection(prob, SplitLeft)
	st.promoteOneDirection(prob, SplitRight)
}

func (st *state) promoteOneDirection(prob forest.NodeID, split SplitType) {
	for _, c := range st.f.Children(prob) {
		st.promoteOneNode(c, split)
	}
}

// promoteFrame is one entry of the explicit stack promoteOneNode walks:
// forward frames visit a node on the way down (and queue its right
// sibling, then possibly its first child after relocating it);
// backward frames clean a node up once its whole subtree has been
// visited.
type promoteFrame struct {
	forward bool
	node    forest.NodeID
}

// promoteOneNode walks node's subtree non-recursively. Every descendant
// marked with split is moved to just before (LEFT) or after (RIGHT) its
// own parent, promoting it one level at a time up through the tree as
// the walk continues into its (now relocated) children. On the way back
// up, childless operation nodes are deleted and single-child nodes are
// spliced out.
func (st *state) promoteOneNode(node forest.NodeID, split SplitType) {
	f := st.f
	if f.IsLeaf(node) {
		return
	}

	stack := []promoteFrame{{false, node}, {true, f.FirstChild(node)}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := top.node

		if top.forward {
			if r := f.Right(nd); r != forest.Nil {
				stack = append(stack, promoteFrame{true, r})
			}
			if f.Data(nd).IsSplitMarked(split) {
				par := f.Parent(nd)
				if par == forest.Nil {
					invariantf("compute: promoteOneNode: marked node %d has no parent", nd)
				}
				if split == SplitLeft {
					f.MoveToBefore(nd, par)
				} else {
					f.MoveToAfter(nd, par)
				}
				if fc := f.FirstChild(nd); fc != forest.Nil {
					stack = append(stack, promoteFrame{false, nd}, promoteFrame{true, fc})
				}
			}
		} else {
			if f.IsLeaf(nd) && f.Data(nd).IsOperation() {
				f.Detach(nd)
				f.Remove(nd)
			} else if f.HasOnlyOneChild(nd) {
				st.spliceOut(nd)
			}
		}
	}
}
