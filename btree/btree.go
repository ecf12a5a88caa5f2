// Package btree implements construction, search and insertion for the
// B-tree ordered set.
package btree

import (
	"cmp"
	"fmt"
	"slices"
)

// Tree is a B-tree of minimum degree t holding unique keys of type K.
// The zero value is not usable; build a Tree with New or NewFunc.
type Tree[K any] struct {
	root    *Node[K]
	t       int
	compare func(a, b K) int
	n       int
}

// New returns an empty tree of minimum degree t ordering keys naturally
// unless an Option overrides the comparison. It panics if t < MinDegree.
func New[K cmp.Ordered](t int, opts ...Option[K]) *Tree[K] {
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}

	return NewFunc(t, o.Compare)
}

// NewFunc returns an empty tree of minimum degree t ordered by compare,
// which must return a negative number, zero or a positive number when a
// is less than, equal to or greater than b.
// It panics if t < MinDegree or compare is nil.
func NewFunc[K any](t int, compare func(a, b K) int) *Tree[K] {
	if t < MinDegree {
		panic(fmt.Sprintf("btree: minimum degree must be ≥ %d, got %d", MinDegree, t))
	}
	if compare == nil {
		panic("btree: NewFunc(nil compare)")
	}

	return &Tree[K]{t: t, compare: compare}
}

// Degree returns the minimum degree t fixed at construction.
func (tr *Tree[K]) Degree() int { return tr.t }

// Len returns the number of keys in the tree.
func (tr *Tree[K]) Len() int { return tr.n }

// Root returns the root node, or nil for an empty tree.
func (tr *Tree[K]) Root() *Node[K] { return tr.root }

// maxKeys is the capacity of every node.
func (tr *Tree[K]) maxKeys() int { return 2*tr.t - 1 }

// minKeys is the lower occupancy bound of every non-root node.
func (tr *Tree[K]) minKeys() int { return tr.t - 1 }

// Height returns the number of levels: 0 for an empty tree, 1 for a
// tree whose root is a leaf.
func (tr *Tree[K]) Height() int {
	h := 0
	for n := tr.root; n != nil; h++ {
		if n.Leaf() {
			return h + 1
		}
		n = n.children[0]
	}

	return h
}

// Search returns the node holding key and the key's index inside it.
// ok is false, and node nil, when key is not in the tree.
//
// Time Complexity: O(t · log_t n).
func (tr *Tree[K]) Search(key K) (node *Node[K], index int, ok bool) {
	for n := tr.root; n != nil; n = n.children[index] {
		index, ok = n.find(key, tr.compare)
		if ok {
			return n, index, true
		}
		if n.Leaf() {
			break
		}
	}

	return nil, 0, false
}

// Has reports whether key is in the tree.
func (tr *Tree[K]) Has(key K) bool {
	_, _, ok := tr.Search(key)

	return ok
}

// Insert adds key to the tree. It returns false, leaving the tree
// untouched, when key is already present.
//
// The key goes into the leaf whose range contains it; every node on the
// way back up that ends with more than 2t-1 keys is split.
func (tr *Tree[K]) Insert(key K) bool {
	if tr.root == nil {
		tr.root = &Node[K]{keys: []K{key}}
		tr.n = 1

		return true
	}

	n := tr.root
	for {
		i, found := n.find(key, tr.compare)
		if found {
			return false // duplicate key, nothing changed so far
		}
		if n.Leaf() {
			n.keys = slices.Insert(n.keys, i, key)
			break
		}
		n = n.children[i]
	}
	tr.n++

	// split upwards while the current node overflows
	for len(n.keys) > tr.maxKeys() {
		n = tr.split(n)
	}

	return true
}

// split divides the overflowing node n around its median, hands the median
// to n's parent (allocating a new root when n is the root) and returns the
// parent, which may now overflow in turn.
func (tr *Tree[K]) split(n *Node[K]) *Node[K] {
	median, sibling := splitNode(n)

	parent := n.parent
	if parent == nil {
		// tree grows by one level
		parent = &Node[K]{children: []*Node[K]{n}}
		tr.root = parent
	}
	n.parent, sibling.parent = parent, parent

	i, _ := parent.find(median, tr.compare)
	parent.keys = slices.Insert(parent.keys, i, median)
	parent.children = slices.Insert(parent.children, i+1, sibling)

	return parent
}

// splitNode cuts n at index len(n.keys)/2-1. The key at that index is
// returned for promotion; keys and children after it move to a new right
// sibling, which adopts those children. n keeps everything before it.
// The sibling's parent is left for the caller to set.
func splitNode[K any](n *Node[K]) (K, *Node[K]) {
	if len(n.keys) < 4 {
		panic(fmt.Sprintf("btree: cannot split a node of %d keys", len(n.keys)))
	}
	mid := len(n.keys)/2 - 1
	median := n.keys[mid]

	sibling := &Node[K]{keys: slices.Clone(n.keys[mid+1:])}
	if !n.Leaf() {
		if len(n.children) != len(n.keys)+1 {
			panic(fmt.Sprintf("btree: node has %d keys but %d children", len(n.keys), len(n.children)))
		}
		sibling.children = slices.Clone(n.children[mid+1:])
		for _, c := range sibling.children {
			c.parent = sibling
		}
		clear(n.children[mid+1:])
		n.children = n.children[:mid+1]
	}
	clear(n.keys[mid:])
	n.keys = n.keys[:mid]

	return median, sibling
}

// Min returns the smallest key; ok is false for an empty tree.
func (tr *Tree[K]) Min() (key K, ok bool) {
	n := tr.root
	if n == nil {
		return key, false
	}
	for !n.Leaf() {
		n = n.children[0]
	}

	return n.keys[0], true
}

// Max returns the largest key; ok is false for an empty tree.
func (tr *Tree[K]) Max() (key K, ok bool) {
	n := tr.root
	if n == nil {
		return key, false
	}
	for !n.Leaf() {
		n = n.children[len(n.children)-1]
	}

	return n.keys[len(n.keys)-1], true
}

// Clear releases every node, children before their parent, and leaves an
// empty tree that keeps its degree and ordering.
func (tr *Tree[K]) Clear() {
	if tr.root == nil {
		return
	}
	// explicit post-order: a node is released once its children are
	stack := []*Node[K]{tr.root}
	var order []*Node[K]
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, n)
		stack = append(stack, n.children...)
	}
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		n.keys, n.children, n.parent = nil, nil, nil
	}
	tr.root = nil
	tr.n = 0
}
