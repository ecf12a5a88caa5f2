// Package btree provides read-only traversals of a Tree: in-order key
// iteration and a breadth-first walk over nodes.
//
// Walk visits nodes level by level, left to right, with optional
// cancellation, depth limiting and a per-level hook. It is the structural
// surface a renderer needs to dump the tree without touching its internals.
package btree

import (
	"context"
	"fmt"
	"iter"
)

// Ascend calls fn for every key in increasing order until fn returns false.
func (tr *Tree[K]) Ascend(fn func(key K) bool) {
	if tr.root != nil {
		ascend(tr.root, fn)
	}
}

func ascend[K any](n *Node[K], fn func(K) bool) bool {
	for i, k := range n.keys {
		if !n.Leaf() && !ascend(n.children[i], fn) {
			return false
		}
		if !fn(k) {
			return false
		}
	}
	if !n.Leaf() {
		return ascend(n.children[len(n.children)-1], fn)
	}

	return true
}

// Descend calls fn for every key in decreasing order until fn returns false.
func (tr *Tree[K]) Descend(fn func(key K) bool) {
	if tr.root != nil {
		descend(tr.root, fn)
	}
}

func descend[K any](n *Node[K], fn func(K) bool) bool {
	if !n.Leaf() && !descend(n.children[len(n.children)-1], fn) {
		return false
	}
	for i := len(n.keys) - 1; i >= 0; i-- {
		if !fn(n.keys[i]) {
			return false
		}
		if !n.Leaf() && !descend(n.children[i], fn) {
			return false
		}
	}

	return true
}

// AscendRange calls fn for every key k with greaterOrEqual ≤ k < lessThan,
// in increasing order, until fn returns false. Subtrees entirely outside
// the range are skipped.
func (tr *Tree[K]) AscendRange(greaterOrEqual, lessThan K, fn func(key K) bool) {
	if tr.root == nil || tr.compare(greaterOrEqual, lessThan) >= 0 {
		return
	}
	tr.ascendRange(tr.root, greaterOrEqual, lessThan, fn)
}

func (tr *Tree[K]) ascendRange(n *Node[K], lo, hi K, fn func(K) bool) bool {
	start, _ := n.find(lo, tr.compare)
	for i := start; i < len(n.keys); i++ {
		if !n.Leaf() && !tr.ascendRange(n.children[i], lo, hi, fn) {
			return false
		}
		if tr.compare(n.keys[i], hi) >= 0 {
			return false
		}
		if !fn(n.keys[i]) {
			return false
		}
	}
	if !n.Leaf() {
		return tr.ascendRange(n.children[len(n.children)-1], lo, hi, fn)
	}

	return true
}

// All returns an iterator over the keys in increasing order.
func (tr *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		tr.Ascend(yield)
	}
}

// Keys returns every key in increasing order.
func (tr *Tree[K]) Keys() []K {
	out := make([]K, 0, tr.n)
	tr.Ascend(func(k K) bool {
		out = append(out, k)
		return true
	})

	return out
}

// NodeInfo describes one node reached by Walk.
type NodeInfo[K any] struct {
	Depth  int  // distance from the root; the root is at depth 0
	Index  int  // position of the node within its level, left to right
	Parent int  // Index of the parent within the previous level; -1 for the root
	Leaf   bool // node has no children
	Keys   []K  // copy of the node's keys
}

// WalkOption configures Walk and Levels.
// An invalid WalkOption is recorded and surfaced as ErrOptionViolation
// when the walk starts.
type WalkOption func(*WalkOptions)

// WalkOptions holds the parameters of a breadth-first walk.
type WalkOptions struct {
	// Ctx allows cancellation; it is checked once per visited node.
	Ctx context.Context

	// MaxDepth, if > 0, stops the walk before nodes deeper than MaxDepth-1,
	// i.e. at most MaxDepth levels are visited. 0 means no limit.
	MaxDepth int

	// OnLevel is called with the depth of each level before its first node.
	OnLevel func(depth int)

	err error
}

// DefaultWalkOptions returns a background context, no depth limit and a
// no-op level hook.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{
		Ctx:      context.Background(),
		MaxDepth: 0,
		OnLevel:  func(int) {},
	}
}

// WithContext sets a custom context for cancellation. nil is ignored.
func WithContext(ctx context.Context) WalkOption {
	return func(o *WalkOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the walk to the first d levels.
//
//	d > 0:  visit depths 0..d-1
//	d == 0: no limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) WalkOption {
	return func(o *WalkOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnLevel registers a hook called when the walk enters a new level.
func WithOnLevel(fn func(depth int)) WalkOption {
	return func(o *WalkOptions) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

// queueItem pairs a node with its position in the walk.
type queueItem[K any] struct {
	node   *Node[K]
	depth  int
	parent int
}

// walker holds the mutable state of one breadth-first walk.
type walker[K any] struct {
	opts  WalkOptions
	visit func(NodeInfo[K]) error
	queue []queueItem[K]
	index []int // next Index per depth
}

// Walk visits every node breadth-first, left to right inside a level,
// calling visit with a description of the node. A non-nil error from
// visit stops the walk and is returned wrapped; cancellation of the
// context returns ctx.Err().
func (tr *Tree[K]) Walk(visit func(NodeInfo[K]) error, opts ...WalkOption) error {
	o := DefaultWalkOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	if tr.root == nil {
		return nil
	}

	w := &walker[K]{opts: o, visit: visit}
	w.queue = append(w.queue, queueItem[K]{node: tr.root, depth: 0, parent: -1})

	return w.loop()
}

// loop drains the queue until it is empty, a hook fails or the context ends.
func (w *walker[K]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		idx, err := w.visitNode(item)
		if err != nil {
			return err
		}
		w.enqueueChildren(item, idx)
	}

	return nil
}

// visitNode assigns the node its in-level index, fires OnLevel for the
// first node of a level and calls the visit hook.
func (w *walker[K]) visitNode(item queueItem[K]) (int, error) {
	if item.depth == len(w.index) {
		w.index = append(w.index, 0)
		w.opts.OnLevel(item.depth)
	}
	idx := w.index[item.depth]
	w.index[item.depth]++

	info := NodeInfo[K]{
		Depth:  item.depth,
		Index:  idx,
		Parent: item.parent,
		Leaf:   item.node.Leaf(),
		Keys:   item.node.Keys(),
	}
	if err := w.visit(info); err != nil {
		return idx, fmt.Errorf("btree: visit error at depth %d index %d: %w", item.depth, idx, err)
	}

	return idx, nil
}

// enqueueChildren queues the children of item unless MaxDepth forbids it.
func (w *walker[K]) enqueueChildren(item queueItem[K], idx int) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next >= w.opts.MaxDepth {
		return
	}
	for _, c := range item.node.children {
		w.queue = append(w.queue, queueItem[K]{node: c, depth: next, parent: idx})
	}
}

// Levels collects the nodes reached by Walk grouped by depth.
func (tr *Tree[K]) Levels(opts ...WalkOption) ([][]NodeInfo[K], error) {
	var levels [][]NodeInfo[K]
	err := tr.Walk(func(info NodeInfo[K]) error {
		if info.Depth == len(levels) {
			levels = append(levels, nil)
		}
		levels[info.Depth] = append(levels[info.Depth], info)

		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	return levels, nil
}
