package forest_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-graphs/moddecomp/forest"
)

// render prints a subtree as "(data(child)(child)...)" recursively,
// for use only in assertions.
func render(f *forest.Forest[int], id forest.NodeID) string {
	var b strings.Builder
	fmt.Fprintf(&b, "(%d", f.Data(id))
	for _, c := range f.Children(id) {
		b.WriteString(render(f, c))
	}
	b.WriteString(")")
	return b.String()
}

// buildFixture reproduces the 20-node forest used throughout this file:
// two mirrored trees rooted at 3 and 13, plus two standalone roots 0, 10.
//
//	3(4(7(8)(6)))(5(2)(9))(1)
//	13(14(17(18)(16)))(15(12)(19))(11)
func buildFixture(t *testing.T) (*forest.Forest[int], []forest.NodeID) {
	t.Helper()
	f := forest.New[int]()
	nodes := make([]forest.NodeID, 20)
	for i := range nodes {
		nodes[i] = f.CreateNode(i)
	}

	relations := [][2]int{
		{3, 1}, {3, 5}, {3, 4}, {5, 9}, {5, 2}, {4, 7}, {7, 6}, {7, 8},
		{13, 11}, {13, 15}, {13, 14}, {15, 19}, {15, 12}, {14, 17}, {17, 16}, {17, 18},
	}
	for _, r := range relations {
		f.MoveTo(nodes[r[1]], nodes[r[0]])
	}
	return f, nodes
}

func TestFixtureShape(t *testing.T) {
	f, nodes := buildFixture(t)

	assert.Equal(t, 20, f.Len())
	assert.Equal(t, 4, f.NumRoots())
	assert.Equal(t, "(3(4(7(8)(6)))(5(2)(9))(1))", render(f, nodes[3]))
	assert.Equal(t, "(13(14(17(18)(16)))(15(12)(19))(11))", render(f, nodes[13]))

	assert.True(t, f.IsRoot(nodes[3]))
	assert.False(t, f.IsRoot(nodes[1]))
	assert.True(t, f.IsRoot(nodes[0]))

	var toInt = func(ids []forest.NodeID) []int {
		out := make([]int, len(ids))
		for i, id := range ids {
			out[i] = int(f.Data(id))
		}
		return out
	}
	assert.Equal(t, []int{4, 5, 1}, toInt(f.Children(nodes[3])))
	assert.Equal(t, []int{2, 9}, toInt(f.Children(nodes[5])))
	assert.Equal(t, []int{8, 6}, toInt(f.Children(nodes[7])))

	assert.Equal(t, []int{3}, toInt(f.Ancestors(nodes[1])))
	assert.Equal(t, []int{5, 3}, toInt(f.Ancestors(nodes[2])))
	assert.Equal(t, []int{7, 4, 3}, toInt(f.Ancestors(nodes[8])))

	assert.Equal(t, []int{3, 4, 7, 8, 6, 5, 2, 9, 1}, toInt(f.DFSPreorder(nodes[3])))
	assert.Equal(t, []int{3, 1, 5, 9, 2, 4, 7, 6, 8}, toInt(f.DFSPreorderReverse(nodes[3])))
	assert.Equal(t, []int{3, 4, 5, 1, 7, 2, 9, 8, 6}, toInt(f.BFS(nodes[3])))
}

func TestDetach(t *testing.T) {
	f, nodes := buildFixture(t)
	f.Detach(nodes[5])

	assert.True(t, f.IsRoot(nodes[5]))
	assert.Equal(t, "(5(2)(9))", render(f, nodes[5]))
	assert.Equal(t, "(3(4(7(8)(6)))(1))", render(f, nodes[3]))
	assert.Equal(t, 5, f.NumRoots())
}

func TestRemove(t *testing.T) {
	f, nodes := buildFixture(t)
	before := f.Len()
	f.Detach(nodes[9])
	f.Remove(nodes[9])

	assert.Equal(t, before-1, f.Len())
	assert.Equal(t, "(5(2))", render(f, nodes[5]))
}

func TestMoveTo(t *testing.T) {
	f, nodes := buildFixture(t)
	f.MoveTo(nodes[9], nodes[7])

	assert.Equal(t, "(7(9)(8)(6))", render(f, nodes[7]))
	assert.Equal(t, "(5(2))", render(f, nodes[5]))
}

func TestMoveToBefore(t *testing.T) {
	f, nodes := buildFixture(t)
	f.MoveTo(nodes[15], nodes[3])
	f.MoveToBefore(nodes[15], nodes[5])

	assert.Equal(t, "(3(4(7(8)(6)))(15(12)(19))(5(2)(9))(1))", render(f, nodes[3]))
}

func TestMoveToAfter(t *testing.T) {
	f, nodes := buildFixture(t)
	f.MoveTo(nodes[0], nodes[3])
	f.MoveToAfter(nodes[0], nodes[1])

	assert.Equal(t, "(3(4(7(8)(6)))(5(2)(9))(1)(0))", render(f, nodes[3]))
}

func TestSwap(t *testing.T) {
	f, nodes := buildFixture(t)
	f.Swap(nodes[5], nodes[15])

	assert.Equal(t, "(3(4(7(8)(6)))(15(12)(19))(1))", render(f, nodes[3]))
	assert.Equal(t, "(13(14(17(18)(16)))(5(2)(9))(11))", render(f, nodes[13]))
}

func TestReplace(t *testing.T) {
	f, nodes := buildFixture(t)
	f.Replace(nodes[3], nodes[5])

	assert.Equal(t, "(3(4(7(8)(6)))(1))", render(f, nodes[3]))
	assert.Equal(t, "(5(2)(9))", render(f, nodes[5]))
}

func TestMakeFirstChild(t *testing.T) {
	f, nodes := buildFixture(t)
	f.MakeFirstChild(nodes[1])
	assert.Equal(t, "(3(1)(4(7(8)(6)))(5(2)(9)))", render(f, nodes[3]))

	// Already first child: no-op.
	f.MakeFirstChild(nodes[1])
	assert.Equal(t, "(3(1)(4(7(8)(6)))(5(2)(9)))", render(f, nodes[3]))
}

func TestAddChildrenFrom(t *testing.T) {
	f, nodes := buildFixture(t)
	f.AddChildrenFrom(nodes[3], nodes[13])

	assert.Equal(t, "(3(14(17(18)(16)))(15(12)(19))(11)(4(7(8)(6)))(5(2)(9))(1))", render(f, nodes[3]))
	assert.Equal(t, "(13)", render(f, nodes[13]))
}

func TestReplaceByChildren(t *testing.T) {
	f, nodes := buildFixture(t)
	f.ReplaceByChildren(nodes[5])

	assert.Equal(t, "(3(4(7(8)(6)))(2)(9)(1))", render(f, nodes[3]))
	require.True(t, f.IsRoot(nodes[5]))
	assert.True(t, f.IsLeaf(nodes[5]))
}

func TestReplaceChildren(t *testing.T) {
	f, nodes := buildFixture(t)
	f.ReplaceChildren(nodes[5], nodes[15])

	assert.Equal(t, "(5(15(12)(19)))", render(f, nodes[5]))
	assert.True(t, f.IsRoot(nodes[2]))
	assert.True(t, f.IsRoot(nodes[9]))
}

func TestLeaves(t *testing.T) {
	f, nodes := buildFixture(t)
	var toInt = func(ids []forest.NodeID) []int {
		out := make([]int, len(ids))
		for i, id := range ids {
			out[i] = int(f.Data(id))
		}
		return out
	}
	assert.Equal(t, []int{1, 9, 2, 6, 8}, toInt(f.Leaves(nodes[3])))
}
