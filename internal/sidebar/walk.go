package sidebar

import (
	"fmt"
	"strings"
)

// WalkFunc is called for every node. trail holds the labels of the node's
// ancestors, outermost first.
type WalkFunc func(trail []string, n *Node) error

// Walk visits every node depth-first in sidebar order
func (t Tree) Walk(fn WalkFunc) error {
	for i := range t {
		if err := walk(nil, &t[i], fn); err != nil {
			return err
		}
	}
	return nil
}

func walk(trail []string, n *Node, fn WalkFunc) error {
	if err := fn(trail, n); err != nil {
		return err
	}
	child := append(trail[:len(trail):len(trail)], n.Label)
	for _, item := range n.Items {
		if item.Node == nil {
			continue
		}
		if err := walk(child, item.Node, fn); err != nil {
			return err
		}
	}
	return nil
}

// Entry is a leaf of the sidebar: a content path or an autogenerated directory
type Entry struct {
	Trail     []string
	Path      string
	Directory string
}

// Title joins the trail for display
func (e Entry) Title() string {
	return strings.Join(e.Trail, " / ")
}

// Target returns the path, or the directory for autogenerated entries
func (e Entry) Target() string {
	if e.Directory != "" {
		return e.Directory + "/"
	}
	return e.Path
}

// Entries flattens the tree into its leaves in sidebar order
func (t Tree) Entries() []Entry {
	var entries []Entry
	_ = t.Walk(func(trail []string, n *Node) error {
		own := append(trail[:len(trail):len(trail)], n.Label)
		if n.Autogenerate != nil {
			entries = append(entries, Entry{Trail: own, Directory: n.Autogenerate.Directory})
			return nil
		}
		for _, item := range n.Items {
			if item.Node == nil {
				entries = append(entries, Entry{Trail: own, Path: item.Path})
			}
		}
		return nil
	})
	return entries
}

// Validate checks that every node has exactly one of items or autogenerate,
// and that link paths are unique within each group
func (t Tree) Validate() error {
	return t.Walk(func(trail []string, n *Node) error {
		where := strings.Join(append(trail[:len(trail):len(trail)], n.Label), " / ")
		if n.Label == "" {
			return fmt.Errorf("%w: group under %q has no label", ErrInvalidNode, strings.Join(trail, " / "))
		}
		switch {
		case n.Autogenerate != nil && n.Items != nil:
			return fmt.Errorf("%w: %s has both items and autogenerate", ErrInvalidNode, where)
		case n.Autogenerate == nil && n.Items == nil:
			return fmt.Errorf("%w: %s has neither items nor autogenerate", ErrInvalidNode, where)
		case n.Autogenerate != nil:
			if n.Autogenerate.Directory == "" {
				return fmt.Errorf("%w: %s has an empty autogenerate directory", ErrInvalidNode, where)
			}
			return nil
		}

		seen := make(map[string]bool, len(n.Items))
		for _, item := range n.Items {
			if item.Node != nil {
				if item.Path != "" {
					return fmt.Errorf("%w: item %q in %s is both a link and a group", ErrInvalidNode, item.Path, where)
				}
				continue
			}
			if item.Path == "" {
				return fmt.Errorf("%w: %s has an empty link", ErrInvalidNode, where)
			}
			if seen[item.Path] {
				return fmt.Errorf("%w: %s links %q twice", ErrInvalidNode, where, item.Path)
			}
			seen[item.Path] = true
		}
		return nil
	})
}
