// Package lvlath is the root of lvlath-btree, an in-memory B-tree ordered
// set with an interactive console for experimenting with it.
//
// What is inside?
//
//	btree/          — Tree and Node: Search, Insert (split-on-overflow),
//	                  Delete (predecessor substitution, borrow, merge),
//	                  ordered iteration, breadth-first Walk and Validate
//	internal/cli/   — line-oriented console driving a Tree[int] or Tree[string]
//	cmd/btree/      — the console binary: flags, random seeding, coloured output
//
// Quick ASCII example (t = 2, keys 1..10):
//
//	            [4]
//	         /       \
//	      [2]        [6 8]
//	     /   \     /   |   \
//	   [1]  [3]  [5]  [7]  [9 10]
//
// Every node but the root holds between t-1 and 2t-1 keys and all leaves sit
// on the same level, so lookups, inserts and deletes touch O(log_t n) nodes.
//
//	go get github.com/katalvlaran/lvlath-btree/btree
package lvlath
