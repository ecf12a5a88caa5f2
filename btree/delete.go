// Package btree implements deletion for the B-tree ordered set: predecessor
// substitution, leaf removal and the borrow/merge repair that restores the
// occupancy invariant on the way back to the root.
package btree

import (
	"fmt"
	"slices"
)

// Delete removes key from the tree. It returns false, leaving the tree
// untouched, when key is not present.
//
// A key held by an internal node is overwritten by its in-order
// predecessor, and the predecessor is removed from its leaf instead.
func (tr *Tree[K]) Delete(key K) bool {
	n, i, found := tr.Search(key)
	if !found {
		return false
	}

	if !n.Leaf() {
		// predecessor: rightmost key of the subtree left of keys[i]
		pred := n.children[i]
		for !pred.Leaf() {
			pred = pred.children[len(pred.children)-1]
		}
		last := len(pred.keys) - 1
		n.keys[i] = pred.keys[last]
		n, i = pred, last
	}

	tr.deleteLeaf(n, i)
	tr.n--

	return true
}

// deleteLeaf removes keys[i] from the leaf n and repairs any underflow.
func (tr *Tree[K]) deleteLeaf(n *Node[K], i int) {
	if !n.Leaf() {
		panic("btree: deleteLeaf on an internal node")
	}

	if n.parent == nil {
		n.removeKey(i)
		if len(n.keys) == 0 {
			tr.root = nil // last key gone
		}

		return
	}

	if len(n.keys) > tr.minKeys() {
		n.removeKey(i)

		return
	}

	// removal would underflow: borrow through the parent if a sibling can spare
	if left := n.leftSibling(); left != nil && len(left.keys) > tr.minKeys() {
		borrowLeft(n, left)
		tr.deleteLeaf(n, i+1) // a key was prepended

		return
	}
	if right := n.rightSibling(); right != nil && len(right.keys) > tr.minKeys() {
		borrowRight(n, right)
		tr.deleteLeaf(n, i)

		return
	}

	n.removeKey(i)
	tr.rebalance(tr.merge(n))
}

// rebalance restores the occupancy invariant from n up to the root after a
// merge took a key away from n.
func (tr *Tree[K]) rebalance(n *Node[K]) {
	for n != nil {
		if n.parent == nil {
			if len(n.keys) == 0 && !n.Leaf() {
				// root emptied by a merge: its only child takes over
				child := n.children[0]
				child.parent = nil
				n.children = nil
				tr.root = child
			}

			return
		}
		if len(n.keys) >= tr.minKeys() {
			return
		}

		if left := n.leftSibling(); left != nil && len(left.keys) > tr.minKeys() {
			borrowLeft(n, left)

			return
		}
		if right := n.rightSibling(); right != nil && len(right.keys) > tr.minKeys() {
			borrowRight(n, right)

			return
		}
		n = tr.merge(n)
	}
}

// merge folds n together with a sibling, the left one when it exists,
// pulling their separator down from the parent. The right-hand node of the
// pair is discarded. merge returns the parent, which lost one key.
func (tr *Tree[K]) merge(n *Node[K]) *Node[K] {
	parent := n.parent
	left, right := n.leftSibling(), n
	if left == nil {
		left, right = n, n.rightSibling()
	}
	if right == nil {
		panic("btree: merge on a node without siblings")
	}

	sep := left.indexInParent()
	left.keys = append(left.keys, parent.keys[sep])
	left.keys = append(left.keys, right.keys...)
	for _, c := range right.children {
		c.parent = left
	}
	left.children = append(left.children, right.children...)
	if !left.Leaf() && len(left.children) != len(left.keys)+1 {
		panic(fmt.Sprintf("btree: merged node has %d keys but %d children", len(left.keys), len(left.children)))
	}

	parent.keys = slices.Delete(parent.keys, sep, sep+1)
	parent.children = slices.Delete(parent.children, sep+1, sep+2)
	right.keys, right.children, right.parent = nil, nil, nil

	return parent
}

// borrowLeft rotates one key from left through the parent into the front
// of n. For internal nodes the left sibling's last child moves along.
func borrowLeft[K any](n, left *Node[K]) {
	parent := n.parent
	sep := left.indexInParent()

	n.keys = slices.Insert(n.keys, 0, parent.keys[sep])
	last := len(left.keys) - 1
	parent.keys[sep] = left.keys[last]
	left.removeKey(last)

	if !left.Leaf() {
		c := left.children[len(left.children)-1]
		left.children = slices.Delete(left.children, len(left.children)-1, len(left.children))
		c.parent = n
		n.children = slices.Insert(n.children, 0, c)
	}
}

// borrowRight rotates one key from right through the parent onto the end
// of n. For internal nodes the right sibling's first child moves along.
func borrowRight[K any](n, right *Node[K]) {
	parent := n.parent
	sep := n.indexInParent()

	n.keys = append(n.keys, parent.keys[sep])
	parent.keys[sep] = right.keys[0]
	right.removeKey(0)

	if !right.Leaf() {
		c := right.children[0]
		right.children = slices.Delete(right.children, 0, 1)
		c.parent = n
		n.children = append(n.children, c)
	}
}

// removeKey drops keys[i] from n.
func (n *Node[K]) removeKey(i int) {
	n.keys = slices.Delete(n.keys, i, i+1)
}

// leftSibling returns the child of n's parent just before n, or nil when n
// is the first child or the root.
func (n *Node[K]) leftSibling() *Node[K] {
	if n.parent == nil {
		return nil
	}
	i := n.indexInParent()
	if i == 0 {
		return nil
	}

	return n.parent.children[i-1]
}

// rightSibling returns the child of n's parent just after n, or nil when n
// is the last child or the root.
func (n *Node[K]) rightSibling() *Node[K] {
	if n.parent == nil {
		return nil
	}
	i := n.indexInParent()
	if i == len(n.parent.children)-1 {
		return nil
	}

	return n.parent.children[i+1]
}

// indexInParent returns the position of n among its parent's children.
// It panics when n has no parent or the parent does not list n.
func (n *Node[K]) indexInParent() int {
	if n.parent == nil {
		panic("btree: indexInParent on the root")
	}
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	panic("btree: node missing from its parent's children")
}
