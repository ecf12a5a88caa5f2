// Package cli implements the interactive console used to drive a B-tree by
// hand: one command per line in, coloured results out.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/lvlath-btree/btree"
)

// DefaultDegree is the minimum degree used when Config.Degree is zero.
const DefaultDegree = 3

var (
	// ErrBadKey is returned when a command argument cannot be parsed as a key.
	ErrBadKey = errors.New("cli: invalid key")

	// ErrBadConfig is returned by ValidateConfig.
	ErrBadConfig = errors.New("cli: invalid config")
)

// Config selects the tree the console drives and how it prints.
type Config struct {
	Degree  int  // minimum degree; 0 means DefaultDegree
	Strings bool // string keys instead of integers
	NoColor bool // plain output
	Prompt  bool // print "> " before reading each line
}

// ValidateConfig reports an error for a degree New would reject.
func ValidateConfig(cfg Config) error {
	if cfg.Degree != 0 && cfg.Degree < btree.MinDegree {
		return fmt.Errorf("%w: degree %d, need ≥ %d", ErrBadConfig, cfg.Degree, btree.MinDegree)
	}

	return nil
}

// CLI reads commands from an input stream and applies them to a tree.
type CLI struct {
	scanner *bufio.Scanner
	out     io.Writer
	prompt  bool
	tree    session

	ok   *color.Color // successful mutations and lookups
	warn *color.Color // no-op outcomes: duplicates, missing keys
	fail *color.Color // usage and parse errors
}

// New returns a console reading from in and writing to out.
// It panics if cfg.Degree is set below btree.MinDegree; the caller
// validates user input first (see ValidateConfig).
func New(cfg Config, in io.Reader, out io.Writer) *CLI {
	degree := cfg.Degree
	if degree == 0 {
		degree = DefaultDegree
	}

	c := &CLI{
		scanner: bufio.NewScanner(in),
		out:     out,
		prompt:  cfg.Prompt,
		ok:      color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed, color.Bold),
	}
	if cfg.Strings {
		c.tree = newStringSession(degree)
	} else {
		c.tree = newIntSession(degree)
	}
	if cfg.NoColor {
		for _, col := range []*color.Color{c.ok, c.warn, c.fail} {
			col.DisableColor()
		}
	}

	return c
}

// Run processes lines until EXIT or end of input and returns any read error.
func (c *CLI) Run() error {
	c.printPrompt()
	for c.scanner.Scan() {
		if !c.Exec(c.scanner.Text()) {
			return nil
		}
		c.printPrompt()
	}

	return c.scanner.Err()
}

func (c *CLI) printPrompt() {
	if c.prompt {
		fmt.Fprint(c.out, "> ")
	}
}

// Exec runs a single command line. It returns false once EXIT is read.
func (c *CLI) Exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	args := fields[1:]

	switch strings.ToLower(fields[0]) {
	case "insert", "ins", "i":
		c.insertCmd(args)
	case "delete", "del", "d":
		c.deleteCmd(args)
	case "search", "get", "s":
		c.searchCmd(args)
	case "keys":
		fmt.Fprintf(c.out, "[%s]\n", strings.Join(c.tree.keys(), " "))
	case "tree":
		c.treeCmd()
	case "stats":
		n, h, t := c.tree.stats()
		fmt.Fprintf(c.out, "len=%d height=%d degree=%d\n", n, h, t)
	case "check":
		c.checkCmd()
	case "clear":
		c.tree.clear()
		c.ok.Fprintln(c.out, "cleared")
	case "help":
		c.PrintHelp()
	case "exit", "quit":
		return false
	default:
		c.fail.Fprintf(c.out, "unknown command %q\n", fields[0])
	}

	return true
}

// Load inserts keys silently and returns how many were not already present.
// It stops at the first key that does not parse.
func (c *CLI) Load(keys []string) (int, error) {
	added := 0
	for _, k := range keys {
		inserted, err := c.tree.insert(k)
		if err != nil {
			return added, err
		}
		if inserted {
			added++
		}
	}

	return added, nil
}

// PrintHelp writes the command summary.
func (c *CLI) PrintHelp() {
	fmt.Fprint(c.out, `B-Tree console

Commands:
  INSERT <key>...  insert keys
  DELETE <key>...  delete keys
  SEARCH <key>     report whether key is present and at which depth
  KEYS             list keys in order
  TREE             print the nodes level by level
  STATS            print key count, height and degree
  CHECK            verify the tree invariants
  CLEAR            remove every key
  HELP             show this text
  EXIT             leave the console
`)
}

func (c *CLI) insertCmd(args []string) {
	if len(args) == 0 {
		c.fail.Fprintln(c.out, "usage: INSERT <key>...")
		return
	}
	for _, a := range args {
		inserted, err := c.tree.insert(a)
		switch {
		case err != nil:
			c.fail.Fprintf(c.out, "error: %v\n", err)
		case inserted:
			c.ok.Fprintf(c.out, "inserted %s\n", a)
		default:
			c.warn.Fprintf(c.out, "exists %s\n", a)
		}
	}
}

func (c *CLI) deleteCmd(args []string) {
	if len(args) == 0 {
		c.fail.Fprintln(c.out, "usage: DELETE <key>...")
		return
	}
	for _, a := range args {
		deleted, err := c.tree.delete(a)
		switch {
		case err != nil:
			c.fail.Fprintf(c.out, "error: %v\n", err)
		case deleted:
			c.ok.Fprintf(c.out, "deleted %s\n", a)
		default:
			c.warn.Fprintf(c.out, "missing %s\n", a)
		}
	}
}

func (c *CLI) searchCmd(args []string) {
	if len(args) != 1 {
		c.fail.Fprintln(c.out, "usage: SEARCH <key>")
		return
	}
	depth, found, err := c.tree.search(args[0])
	switch {
	case err != nil:
		c.fail.Fprintf(c.out, "error: %v\n", err)
	case found:
		c.ok.Fprintf(c.out, "found %s at depth %d\n", args[0], depth)
	default:
		c.warn.Fprintf(c.out, "missing %s\n", args[0])
	}
}

func (c *CLI) treeCmd() {
	lines, err := c.tree.levels()
	if err != nil {
		c.fail.Fprintf(c.out, "error: %v\n", err)
		return
	}
	if len(lines) == 0 {
		fmt.Fprintln(c.out, "(empty)")
		return
	}
	for _, l := range lines {
		fmt.Fprintln(c.out, l)
	}
}

func (c *CLI) checkCmd() {
	if err := c.tree.check(); err != nil {
		c.fail.Fprintf(c.out, "broken: %v\n", err)
		return
	}
	c.ok.Fprintln(c.out, "ok")
}
