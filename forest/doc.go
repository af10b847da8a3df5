// Package forest implements OrderedForest: a mutable, generic, rooted
// ordered forest with doubly-linked siblings and constant-time (or
// near-constant-time, bounded by the number of nodes actually relinked)
// surgery primitives — detach, remove, move, swap, replace, splice.
//
// Nodes are addressed by NodeID, an index into an internal arena, never by
// pointer: this sidesteps cyclic parent/child references and lets detached
// nodes keep a stable, valid handle until Remove tombstones the slot. All
// traversals are non-recursive, since compute-tree depth is Θ(n) in the
// worst case and must not rely on the native call stack.
//
// Every public mutation preserves:
//
//   - node.Left(x).Right() == x when Left(x) exists (symmetric for Right)
//   - Parent(x).FirstChild() is the leftmost sibling
//   - Parent(x)'s child count equals the length of its sibling chain
//   - exactly one of (HasParent(x), x is a root) holds
//   - no cycles
//
// Preconditions on individual operations are assertions, not recoverable
// errors: violating one panics.
package forest
