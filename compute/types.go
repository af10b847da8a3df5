package compute

import (
	"github.com/go-graphs/moddecomp/forest"
	"github.com/go-graphs/moddecomp/mdop"
)

// Kind discriminates the three shapes a compute-tree node can take.
type Kind int

const (
	KindVertex Kind = iota
	KindOperation
	KindProblem
)

// SplitType records which side of a refinement step marked a node.
type SplitType int

const (
	SplitNone SplitType = iota
	SplitLeft
	SplitRight
	SplitMixed
)

// Data is the payload stored at every forest node while the linear-time
// solver runs. Its Kind selects which fields are meaningful: Vertex for
// KindVertex, Op for KindOperation, Connected/Active/Vertex (as the
// pivot, or -1) for KindProblem. The remaining fields are scratch space
// used by RefineStage and PromoteStage and are reset by Clear between
// problems.
type Data struct {
	Kind Kind

	Vertex    int // KindVertex: the graph vertex. KindProblem: the chosen pivot, or -1.
	Op        mdop.OpType
	Active    bool
	Connected bool

	CompNumber            int
	TreeNumber            int
	NumMarks              int
	Split                 SplitType
	NumLeftSplitChildren  int
	NumRightSplitChildren int
}

// F is the forest type shared by every file in this package: a
// forest.Forest keyed by *Data, so mutating a node's scratch fields needs
// no round-trip through Forest.SetData.
type F = forest.Forest[*Data]

func newVertexData(v int) *Data {
	return &Data{Kind: KindVertex, Vertex: v, Op: mdop.Prime, CompNumber: -1, TreeNumber: -1}
}

func newOperationData(op mdop.OpType) *Data {
	return &Data{Kind: KindOperation, Op: op, Vertex: -1, CompNumber: -1, TreeNumber: -1}
}

func newProblemData(connected bool) *Data {
	return &Data{Kind: KindProblem, Vertex: -1, Op: mdop.Prime, Connected: connected, CompNumber: -1, TreeNumber: -1}
}

// Copy returns a copy of d for node duplication (pivot splitting,
// refinement's parent-copy-on-split). The mark counters start at zero on
// the copy: they count the copy's own children, and it has none yet.
func (d *Data) Copy() *Data {
	cp := *d
	cp.NumMarks = 0
	cp.NumLeftSplitChildren = 0
	cp.NumRightSplitChildren = 0
	return &cp
}

func (d *Data) IsVertex() bool    { return d.Kind == KindVertex }
func (d *Data) IsOperation() bool { return d.Kind == KindOperation }
func (d *Data) IsProblem() bool   { return d.Kind == KindProblem }

// Clear resets the scratch fields RefineStage and AssembleStage use,
// between one problem's resolution and the next.
func (d *Data) Clear() {
	d.CompNumber = -1
	d.TreeNumber = -1
	d.NumMarks = 0
	d.Split = SplitNone
	d.NumLeftSplitChildren = 0
	d.NumRightSplitChildren = 0
}

// IsSplitMarked reports whether d carries split, either directly or via
// SplitMixed.
func (d *Data) IsSplitMarked(split SplitType) bool {
	return d.Split == split || d.Split == SplitMixed
}

// SetSplitMark promotes d's split mark to split, or to SplitMixed if it
// already carried a different one.
func (d *Data) SetSplitMark(split SplitType) {
	switch {
	case d.Split == split:
	case d.Split == SplitNone:
		d.Split = split
	default:
		d.Split = SplitMixed
	}
}

func (d *Data) incSplitChildren(split SplitType) {
	if split == SplitLeft {
		d.NumLeftSplitChildren++
	} else {
		d.NumRightSplitChildren++
	}
}

func (d *Data) decSplitChildren(split SplitType) {
	if split == SplitLeft {
		d.NumLeftSplitChildren--
	} else {
		d.NumRightSplitChildren--
	}
}
