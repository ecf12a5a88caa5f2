// Package btree defines the node type, construction options and error
// values shared by the B-tree operations.
package btree

import (
	"cmp"
	"errors"
	"slices"
)

// MinDegree is the smallest legal minimum degree of a Tree.
const MinDegree = 2

// Sentinel errors for tree inspection.
var (
	// ErrInvariant is returned by Validate when a structural invariant is broken.
	ErrInvariant = errors.New("btree: invariant violated")

	// ErrOptionViolation is returned when an invalid WalkOption is supplied.
	ErrOptionViolation = errors.New("btree: invalid option supplied")
)

// Node is a single B-tree node. A node owns its children; the parent link
// is a back reference used only to climb during rebalancing.
//
// Nodes are exposed read-only: the accessors return copies, so callers
// cannot break the tree's invariants through them.
type Node[K any] struct {
	keys     []K
	children []*Node[K]
	parent   *Node[K]
}

// Leaf reports whether n has no children.
func (n *Node[K]) Leaf() bool { return len(n.children) == 0 }

// Len returns the number of keys stored in n.
func (n *Node[K]) Len() int { return len(n.keys) }

// Key returns the i-th key of n. It panics if i is out of range.
func (n *Node[K]) Key(i int) K { return n.keys[i] }

// Keys returns a copy of the keys stored in n, in increasing order.
func (n *Node[K]) Keys() []K { return slices.Clone(n.keys) }

// Children returns a copy of n's child slice; nil for a leaf.
func (n *Node[K]) Children() []*Node[K] { return slices.Clone(n.children) }

// Parent returns n's parent, or nil when n is the root.
func (n *Node[K]) Parent() *Node[K] { return n.parent }

// find returns the position of key in n.keys and whether it is present.
// When absent, the position is the index of the child whose range contains key.
func (n *Node[K]) find(key K, compare func(a, b K) int) (int, bool) {
	return slices.BinarySearchFunc(n.keys, key, compare)
}

// Option configures a Tree built by New.
type Option[K cmp.Ordered] func(*Options[K])

// Options holds the construction parameters accepted by New.
type Options[K cmp.Ordered] struct {
	// Compare orders keys; it must be a strict three-way comparison.
	// Defaults to cmp.Compare.
	Compare func(a, b K) int
}

// DefaultOptions returns Options ordering keys by cmp.Compare.
func DefaultOptions[K cmp.Ordered]() Options[K] {
	return Options[K]{Compare: cmp.Compare[K]}
}

// WithCompare overrides the natural order of K. Passing nil has no effect.
func WithCompare[K cmp.Ordered](fn func(a, b K) int) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.Compare = fn
		}
	}
}

// WithReverse orders keys from largest to smallest.
func WithReverse[K cmp.Ordered]() Option[K] {
	return func(o *Options[K]) {
		o.Compare = func(a, b K) int { return cmp.Compare(b, a) }
	}
}
