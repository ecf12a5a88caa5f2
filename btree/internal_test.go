package btree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// leafOf builds a leaf holding keys lo..hi.
func leafOf(lo, hi int) *Node[int] {
	n := &Node[int]{}
	for k := lo; k <= hi; k++ {
		n.keys = append(n.keys, k)
	}
	return n
}

// internalOf builds an internal node with keys 10, 20, ... and one leaf
// child per gap, every child parented to the node.
func internalOf(nkeys int) *Node[int] {
	n := &Node[int]{}
	for i := 0; i <= nkeys; i++ {
		if i < nkeys {
			n.keys = append(n.keys, (i+1)*10)
		}
		c := leafOf(i*10+1, i*10+2)
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// TestSplitNode_AllSizes splits leaves and internal nodes of every size from
// 4 up to 2t and checks both halves and the promoted median.
func TestSplitNode_AllSizes(t *testing.T) {
	for size := 4; size <= 12; size++ {
		mid := size/2 - 1

		leaf := leafOf(1, size)
		median, right := splitNode(leaf)
		assert.Equal(t, mid+1, median, "leaf size %d", size)
		assert.Len(t, leaf.keys, mid, "leaf size %d left", size)
		assert.Len(t, right.keys, size-mid-1, "leaf size %d right", size)
		assert.True(t, right.Leaf())

		in := internalOf(size)
		median, right = splitNode(in)
		assert.Equal(t, (mid+1)*10, median, "internal size %d", size)
		assert.Len(t, in.children, len(in.keys)+1, "internal size %d left", size)
		assert.Len(t, right.children, len(right.keys)+1, "internal size %d right", size)
		for _, c := range right.children {
			assert.Same(t, right, c.parent)
		}
		for _, c := range in.children {
			assert.Same(t, in, c.parent)
		}
	}
}

// TestSplitNode_OverflowBounds checks that the one size Insert ever splits,
// 2t keys, yields halves of t-1 and t keys.
func TestSplitNode_OverflowBounds(t *testing.T) {
	for deg := 2; deg <= 8; deg++ {
		n := leafOf(1, 2*deg)
		_, right := splitNode(n)
		assert.Len(t, n.keys, deg-1, "t=%d", deg)
		assert.Len(t, right.keys, deg, "t=%d", deg)
	}
}

func TestSplitNode_TooSmall(t *testing.T) {
	assert.Panics(t, func() { splitNode(leafOf(1, 3)) })
}

func TestHelpers_Siblings(t *testing.T) {
	n := internalOf(2)
	first, middle, last := n.children[0], n.children[1], n.children[2]

	assert.Nil(t, first.leftSibling())
	assert.Same(t, middle, first.rightSibling())
	assert.Same(t, first, middle.leftSibling())
	assert.Same(t, last, middle.rightSibling())
	assert.Nil(t, last.rightSibling())
	assert.Equal(t, 2, last.indexInParent())

	assert.Nil(t, n.leftSibling())
	assert.Nil(t, n.rightSibling())
	assert.Panics(t, func() { n.indexInParent() })
}

func TestDeleteLeaf_InternalPanics(t *testing.T) {
	tr := New[int](2)
	for i := 1; i <= 5; i++ {
		tr.Insert(i)
	}
	require.False(t, tr.root.Leaf())
	assert.Panics(t, func() { tr.deleteLeaf(tr.root, 0) })
}

func TestValidate_DetectsCorruption(t *testing.T) {
	build := func(t *testing.T) *Tree[int] {
		tr := New[int](2)
		for i := 1; i <= 10; i++ {
			tr.Insert(i)
		}
		require.NoError(t, tr.Validate())
		return tr
	}

	cases := map[string]func(tr *Tree[int]){
		"count":        func(tr *Tree[int]) { tr.n++ },
		"order":        func(tr *Tree[int]) { tr.root.children[1].keys[0] = 100 },
		"unsorted":     func(tr *Tree[int]) { c := tr.root.children[1]; c.keys[0], c.keys[1] = c.keys[1], c.keys[0] },
		"underflow":    func(tr *Tree[int]) { tr.root.children[0].children[0].keys = nil },
		"overflow":     func(tr *Tree[int]) { l := tr.root.children[1].children[2]; l.keys = append(l.keys, 11, 12, 13) },
		"parent link":  func(tr *Tree[int]) { tr.root.children[0].children[1].parent = tr.root },
		"child count":  func(tr *Tree[int]) { c := tr.root.children[1]; c.children = c.children[:2] },
		"leaf depth":   func(tr *Tree[int]) { tr.root.children[0].children = nil; tr.root.children[0].keys = []int{1, 2, 3} },
		"root parent":  func(tr *Tree[int]) { tr.root.parent = &Node[int]{} },
		"empty root":   func(tr *Tree[int]) { tr.root.keys = nil },
		"empty with n": func(tr *Tree[int]) { tr.root = nil },
	}
	for name, corrupt := range cases {
		t.Run(name, func(t *testing.T) {
			tr := build(t)
			corrupt(tr)
			assert.ErrorIs(t, tr.Validate(), ErrInvariant)
		})
	}
}
