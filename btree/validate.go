package btree

import "fmt"

// Validate checks every structural invariant of the tree and returns an
// error wrapping ErrInvariant that names the first violation found.
//
// Checked: occupancy bounds, strictly increasing keys, key/child counts,
// ordering across subtrees, equal leaf depth, parent back-links and the
// cached key count.
//
// Time Complexity: O(n).
func (tr *Tree[K]) Validate() error {
	if tr.root == nil {
		if tr.n != 0 {
			return fmt.Errorf("%w: empty tree reports %d keys", ErrInvariant, tr.n)
		}
		return nil
	}
	if tr.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrInvariant)
	}

	v := &validator[K]{tree: tr, leafDepth: -1}
	if err := v.check(tr.root, 0, nil, nil); err != nil {
		return err
	}
	if v.count != tr.n {
		return fmt.Errorf("%w: Len() = %d but tree holds %d keys", ErrInvariant, tr.n, v.count)
	}

	return nil
}

// validator carries state shared across the recursive check.
type validator[K any] struct {
	tree      *Tree[K]
	leafDepth int
	count     int
}

// check validates the subtree rooted at n; lo and hi, when non-nil, are the
// exclusive bounds inherited from the ancestors' separators.
func (v *validator[K]) check(n *Node[K], depth int, lo, hi *K) error {
	tr := v.tree
	switch {
	case len(n.keys) > tr.maxKeys():
		return fmt.Errorf("%w: node at depth %d holds %d keys, max %d", ErrInvariant, depth, len(n.keys), tr.maxKeys())
	case n == tr.root && len(n.keys) == 0:
		return fmt.Errorf("%w: root holds no keys", ErrInvariant)
	case n != tr.root && len(n.keys) < tr.minKeys():
		return fmt.Errorf("%w: node at depth %d holds %d keys, min %d", ErrInvariant, depth, len(n.keys), tr.minKeys())
	}

	for i, k := range n.keys {
		if i > 0 && tr.compare(n.keys[i-1], k) >= 0 {
			return fmt.Errorf("%w: keys not increasing at depth %d index %d", ErrInvariant, depth, i)
		}
		if lo != nil && tr.compare(k, *lo) <= 0 {
			return fmt.Errorf("%w: key at depth %d index %d not above its left separator", ErrInvariant, depth, i)
		}
		if hi != nil && tr.compare(k, *hi) >= 0 {
			return fmt.Errorf("%w: key at depth %d index %d not below its right separator", ErrInvariant, depth, i)
		}
	}
	v.count += len(n.keys)

	if n.Leaf() {
		if v.leafDepth < 0 {
			v.leafDepth = depth
		} else if v.leafDepth != depth {
			return fmt.Errorf("%w: leaves at depths %d and %d", ErrInvariant, v.leafDepth, depth)
		}
		return nil
	}

	if len(n.children) != len(n.keys)+1 {
		return fmt.Errorf("%w: node at depth %d has %d keys but %d children", ErrInvariant, depth, len(n.keys), len(n.children))
	}
	for i, c := range n.children {
		if c.parent != n {
			return fmt.Errorf("%w: child %d at depth %d has a stale parent link", ErrInvariant, i, depth+1)
		}
		clo, chi := lo, hi
		if i > 0 {
			clo = &n.keys[i-1]
		}
		if i < len(n.keys) {
			chi = &n.keys[i]
		}
		if err := v.check(c, depth+1, clo, chi); err != nil {
			return err
		}
	}

	return nil
}
