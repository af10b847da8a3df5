package forest_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/go-graphs/moddecomp/forest"
)

// InvariantSuite re-checks the forest's structural invariants after each
// public mutation: sibling-link symmetry, child counts matching chain
// lengths, and every live node being exactly one of (has parent, is in
// the root set).
type InvariantSuite struct {
	suite.Suite
	f     *forest.Forest[int]
	nodes []forest.NodeID
}

func (s *InvariantSuite) SetupTest() {
	s.f, s.nodes = buildFixture(s.T())
}

func (s *InvariantSuite) checkInvariants() {
	s.T().Helper()
	f := s.f

	seen := make(map[forest.NodeID]bool)
	for _, root := range f.Roots() {
		s.Require().Equal(forest.Nil, f.Parent(root), "root %d has a parent", root)

		stack := []forest.NodeID{root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			s.Require().False(seen[n], "node %d reachable twice: cycle or shared subtree", n)
			seen[n] = true

			count := 0
			prev := forest.Nil
			for c := f.FirstChild(n); c != forest.Nil; c = f.Right(c) {
				s.Require().Equal(n, f.Parent(c), "child %d of %d has wrong parent", c, n)
				s.Require().Equal(prev, f.Left(c), "left link of %d broken", c)
				if prev != forest.Nil {
					s.Require().Equal(c, f.Right(prev), "right link of %d broken", prev)
				}
				prev = c
				count++
				stack = append(stack, c)
			}
			s.Require().Equal(f.NumChildren(n), count, "child count of %d disagrees with chain length", n)
		}
	}

	// Every live node is reachable from exactly one root: no node is both
	// parented and in the root set, none is neither.
	s.Require().Equal(f.Len(), len(seen))
}

func (s *InvariantSuite) TestFixture() {
	s.checkInvariants()
}

func (s *InvariantSuite) TestDetach() {
	s.f.Detach(s.nodes[5])
	s.checkInvariants()
}

func (s *InvariantSuite) TestRemove() {
	s.f.Detach(s.nodes[9])
	s.f.Remove(s.nodes[9])
	s.checkInvariants()
}

func (s *InvariantSuite) TestMoveTo() {
	s.f.MoveTo(s.nodes[9], s.nodes[7])
	s.checkInvariants()
}

func (s *InvariantSuite) TestMoveToBefore() {
	s.f.MoveToBefore(s.nodes[0], s.nodes[5])
	s.checkInvariants()
}

func (s *InvariantSuite) TestMoveToAfter() {
	s.f.MoveToAfter(s.nodes[10], s.nodes[1])
	s.checkInvariants()
}

func (s *InvariantSuite) TestMakeFirstChild() {
	s.f.MakeFirstChild(s.nodes[1])
	s.checkInvariants()
}

func (s *InvariantSuite) TestSwapNonRoots() {
	s.f.Swap(s.nodes[5], s.nodes[15])
	s.checkInvariants()
}

func (s *InvariantSuite) TestSwapRootWithNonRoot() {
	s.f.Swap(s.nodes[0], s.nodes[15])
	s.checkInvariants()
	s.True(s.f.IsRoot(s.nodes[15]))
	s.False(s.f.IsRoot(s.nodes[0]))
}

func (s *InvariantSuite) TestSwapTwoRoots() {
	s.f.Swap(s.nodes[3], s.nodes[13])
	s.checkInvariants()
	s.True(s.f.IsRoot(s.nodes[3]))
	s.True(s.f.IsRoot(s.nodes[13]))
}

func (s *InvariantSuite) TestReplace() {
	s.f.Replace(s.nodes[3], s.nodes[5])
	s.checkInvariants()
}

func (s *InvariantSuite) TestReplaceByChildren() {
	s.f.ReplaceByChildren(s.nodes[5])
	s.checkInvariants()
}

func (s *InvariantSuite) TestAddChildrenFrom() {
	s.f.AddChildrenFrom(s.nodes[3], s.nodes[13])
	s.checkInvariants()
}

func (s *InvariantSuite) TestReplaceChildren() {
	s.f.ReplaceChildren(s.nodes[5], s.nodes[15])
	s.checkInvariants()
}

func TestInvariantSuite(t *testing.T) {
	suite.Run(t, new(InvariantSuite))
}
