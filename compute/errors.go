package compute

import "fmt"

// invariantf panics on a violated internal invariant. None of these should
// be reachable from valid input; they exist to fail loudly rather than
// silently mis-decompose a graph.
func invariantf(format string, args ...any) {
	panic(fmt.Sprintf(format, args...))
}
