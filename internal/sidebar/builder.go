package sidebar

import (
	"github.com/jh3/course-sidebar/internal/session"
)

// Auto creates a collapsed group populated by the framework from dir
func Auto(label, dir string) Node {
	return Node{
		Label:        label,
		Collapsed:    true,
		Autogenerate: &Autogenerate{Directory: dir},
	}
}

// Static creates a collapsed group with hand-authored children
func Static(label string, items ...Item) Node {
	if items == nil {
		items = []Item{}
	}
	return Node{
		Label:     label,
		Collapsed: true,
		Items:     items,
	}
}

// Sessions creates a collapsed group with one link per session of category
func Sessions(label, category string, count session.Count) Node {
	paths := session.Paths(category, count)
	items := make([]Item, len(paths))
	for i, p := range paths {
		items[i] = Link(p)
	}
	return Static(label, items...)
}

// Link creates a leaf item pointing at a content path
func Link(path string) Item {
	return Item{Path: path}
}

// Group nests n as a child item
func Group(n Node) Item {
	return Item{Node: &n}
}

// Expanded returns a copy of n that starts open in the sidebar
func (n Node) Expanded() Node {
	n.Collapsed = false
	return n
}
