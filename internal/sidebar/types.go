// Package sidebar assembles the navigation tree handed to the site framework.
package sidebar

import (
	"encoding/json"
	"errors"
)

// ErrInvalidNode is returned for nodes that break the items/autogenerate shape
var ErrInvalidNode = errors.New("invalid sidebar node")

// Autogenerate asks the site framework to discover entries from a content directory
type Autogenerate struct {
	Directory string `json:"directory" yaml:"directory"`
}

// Node is a labeled group in the sidebar. It carries either Items or
// Autogenerate, never both.
type Node struct {
	Label        string
	Collapsed    bool
	Items        []Item
	Autogenerate *Autogenerate
}

// Item is one child of a Node: a content path or a nested group
type Item struct {
	Path string
	Node *Node
}

// Tree is the top-level list of sidebar groups
type Tree []Node

// IsGroup reports whether the item is a nested node rather than a link
func (i Item) IsGroup() bool {
	return i.Node != nil
}

// wireNode is the framework's schema for a group
type wireNode struct {
	Label        string        `json:"label" yaml:"label"`
	Collapsed    bool          `json:"collapsed" yaml:"collapsed"`
	Items        *[]Item       `json:"items,omitempty" yaml:"items,omitempty"`
	Autogenerate *Autogenerate `json:"autogenerate,omitempty" yaml:"autogenerate,omitempty"`
}

func (n Node) wire() wireNode {
	w := wireNode{
		Label:        n.Label,
		Collapsed:    n.Collapsed,
		Autogenerate: n.Autogenerate,
	}
	if n.Autogenerate == nil {
		// Groups with zero sessions still serialize as an empty list
		items := n.Items
		if items == nil {
			items = []Item{}
		}
		w.Items = &items
	}
	return w
}

// MarshalJSON encodes the node in the framework's sidebar schema
func (n Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.wire())
}

// MarshalYAML encodes the node in the framework's sidebar schema
func (n Node) MarshalYAML() (interface{}, error) {
	return n.wire(), nil
}

// MarshalJSON encodes links as bare strings and groups as objects
func (i Item) MarshalJSON() ([]byte, error) {
	if i.Node != nil {
		return json.Marshal(i.Node)
	}
	return json.Marshal(i.Path)
}

// MarshalYAML encodes links as bare strings and groups as mappings
func (i Item) MarshalYAML() (interface{}, error) {
	if i.Node != nil {
		return i.Node.wire(), nil
	}
	return i.Path, nil
}
