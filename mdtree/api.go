package mdtree

import (
	"errors"

	"github.com/go-graphs/moddecomp/compute"
	"github.com/go-graphs/moddecomp/graph"
	"github.com/go-graphs/moddecomp/naive"
)

// Solver selects which of the two independent algorithms
// ModularDecomposition runs. Both are required to agree on the
// resulting tree's structure.
type Solver int

const (
	// Naive runs the O(n^4) implication-class solver.
	Naive Solver = iota
	// Linear runs the linear-time pivot/refine/promote/assemble solver.
	Linear
)

// ErrUnknownSolver is returned when WithSolver names a Solver value
// outside {Naive, Linear}.
var ErrUnknownSolver = errors.New("mdtree: unknown solver")

type options struct {
	solver Solver
	sort   bool
}

// Option configures a ModularDecomposition call.
type Option func(*options)

// WithSolver selects the solver ModularDecomposition runs. The default
// is Naive.
func WithSolver(s Solver) Option {
	return func(o *options) { o.solver = s }
}

// WithSort requests a canonical Sort of the result before it is
// returned, applied once, after the tree is fully built.
func WithSort() Option {
	return func(o *options) { o.sort = true }
}

// ModularDecomposition computes the modular decomposition tree of g.
//
// It returns (nil, nil) for the empty graph (an absent value, not an
// error), and (nil, ErrUnknownSolver) if WithSolver named an
// unrecognized Solver value.
func ModularDecomposition(g graph.Graph, opts ...Option) (*Tree, error) {
	if g.Len() == 0 {
		return nil, nil
	}

	o := &options{solver: Naive}
	for _, opt := range opts {
		opt(o)
	}

	var t *Tree
	switch o.solver {
	case Naive:
		t = FromNaive(naive.Decompose(graph.NewIndexed(g)))
	case Linear:
		ix := graph.NewIndexed(g)
		f, root := compute.Run(ix)
		t = FromLinear(f, root, ix)
	default:
		return nil, ErrUnknownSolver
	}

	if o.sort {
		t.Sort()
	}
	return t, nil
}
