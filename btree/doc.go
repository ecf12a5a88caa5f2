// Package btree provides an in-memory B-tree ordered set with a fixed
// minimum degree t, following the classic textbook formulation.
//
// What:
//
//   - Search: locate the node and slot holding a key.
//   - Insert: add a key at its leaf, splitting overflowing nodes bottom-up;
//     a split of the root grows the tree by one level.
//   - Delete: remove a key, substituting the in-order predecessor when the
//     key lives in an internal node, then repairing underflow by borrowing
//     from a sibling or merging with it; a root left without keys is
//     replaced by its only child.
//   - Ordered queries: Min, Max, Ascend, Descend, AscendRange, All, Keys.
//   - Structural access: Root, Node.Keys, Node.Children and the breadth-first
//     Walk/Levels, enough for an external dumper to render the tree.
//   - Validate: check every structural invariant of the tree.
//
// Invariants (t = Degree()):
//
//   - every node except the root holds between t-1 and 2t-1 keys;
//     the root of a non-empty tree holds between 1 and 2t-1 keys
//   - keys inside a node are strictly increasing
//   - an internal node with k keys has exactly k+1 children, and keys[i]
//     separates the subtree of children[i] from that of children[i+1]
//   - all leaves are at the same depth
//
// Determinism:
//
//	Splits promote the key at index len(keys)/2-1, internal deletes use the
//	predecessor, and underflow prefers the left sibling both for borrowing
//	and merging. The shape produced by a given operation sequence is
//	therefore fully reproducible.
//
// Complexity (n = Len(), t = Degree()):
//
//   - Search, Insert, Delete: O(t · log_t n)
//   - Ascend, Keys, Walk, Validate: O(n)
//   - Memory: O(n)
//
// Usage:
//
//	tr := btree.New[int](3)
//	tr.Insert(10)
//	tr.Insert(20)
//	if _, _, ok := tr.Search(10); ok {
//		// found
//	}
//	tr.Delete(10)
//
//	// custom order
//	rev := btree.NewFunc[string](2, func(a, b string) int { return strings.Compare(b, a) })
//
// Errors:
//
//   - Insert of a present key and Delete of an absent key return false and
//     leave the tree untouched; they are not errors.
//   - ErrInvariant from Validate when the structure is broken.
//   - ErrOptionViolation from Walk/Levels for invalid walk options.
//   - A degree below 2 or a nil comparator panics at construction.
//
// Concurrency:
//
//	A Tree is not safe for concurrent use. Callers that share one must
//	synchronise access themselves.
package btree
