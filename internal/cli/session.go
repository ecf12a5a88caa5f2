package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlath-btree/btree"
)

// session adapts a typed tree to the string commands of the console.
type session interface {
	insert(arg string) (bool, error)
	delete(arg string) (bool, error)
	search(arg string) (depth int, ok bool, err error)
	keys() []string
	levels() ([]string, error)
	stats() (n, height, degree int)
	check() error
	clear()
}

// treeSession is a session over a Tree[K] with a key parser.
type treeSession[K any] struct {
	tree  *btree.Tree[K]
	parse func(string) (K, error)
}

func newIntSession(degree int) session {
	return &treeSession[int]{tree: btree.New[int](degree), parse: strconv.Atoi}
}

func newStringSession(degree int) session {
	return &treeSession[string]{
		tree:  btree.New[string](degree),
		parse: func(s string) (string, error) { return s, nil },
	}
}

func (s *treeSession[K]) key(arg string) (K, error) {
	k, err := s.parse(arg)
	if err != nil {
		return k, fmt.Errorf("%w %q: %v", ErrBadKey, arg, err)
	}

	return k, nil
}

func (s *treeSession[K]) insert(arg string) (bool, error) {
	k, err := s.key(arg)
	if err != nil {
		return false, err
	}

	return s.tree.Insert(k), nil
}

func (s *treeSession[K]) delete(arg string) (bool, error) {
	k, err := s.key(arg)
	if err != nil {
		return false, err
	}

	return s.tree.Delete(k), nil
}

func (s *treeSession[K]) search(arg string) (int, bool, error) {
	k, err := s.key(arg)
	if err != nil {
		return 0, false, err
	}
	node, _, ok := s.tree.Search(k)
	if !ok {
		return 0, false, nil
	}
	depth := 0
	for p := node.Parent(); p != nil; p = p.Parent() {
		depth++
	}

	return depth, true, nil
}

func (s *treeSession[K]) keys() []string {
	out := make([]string, 0, s.tree.Len())
	for k := range s.tree.All() {
		out = append(out, fmt.Sprint(k))
	}

	return out
}

// levels renders one line per depth: "d: [k k] [k] ...".
func (s *treeSession[K]) levels() ([]string, error) {
	levels, err := s.tree.Levels()
	if err != nil {
		return nil, err
	}
	lines := make([]string, len(levels))
	for d, level := range levels {
		var b strings.Builder
		fmt.Fprintf(&b, "%d:", d)
		for _, info := range level {
			fmt.Fprintf(&b, " %v", info.Keys)
		}
		lines[d] = b.String()
	}

	return lines, nil
}

func (s *treeSession[K]) stats() (int, int, int) {
	return s.tree.Len(), s.tree.Height(), s.tree.Degree()
}

func (s *treeSession[K]) check() error { return s.tree.Validate() }

func (s *treeSession[K]) clear() { s.tree.Clear() }
