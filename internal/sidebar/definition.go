package sidebar

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jh3/course-sidebar/internal/session"
)

// SessionsDef generates one link per session under Category
type SessionsDef struct {
	Category string        `yaml:"category"`
	Count    session.Count `yaml:"count"`
}

// Definition is the authored form of a sidebar group, as read from YAML.
// Exactly one of Autogenerate, Sessions, Items or (for nested entries) Link is set.
type Definition struct {
	Label        string       `yaml:"label,omitempty"`
	Collapsed    *bool        `yaml:"collapsed,omitempty"`
	Link         string       `yaml:"link,omitempty"`
	Autogenerate string       `yaml:"autogenerate,omitempty"`
	Sessions     *SessionsDef `yaml:"sessions,omitempty"`
	Items        []Definition `yaml:"items,omitempty"`
}

// LoadDefinitions decodes a YAML list of group definitions
func LoadDefinitions(r io.Reader) ([]Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var defs []Definition
	if err := dec.Decode(&defs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding sidebar definition: %w", err)
	}
	return defs, nil
}

// Build assembles a tree from definitions, stopping at the first invalid one
func Build(defs []Definition) (Tree, error) {
	tree := make(Tree, 0, len(defs))
	for i, def := range defs {
		if def.Link != "" {
			return nil, fmt.Errorf("%w: top-level entry %d is a bare link %q", ErrInvalidNode, i+1, def.Link)
		}
		n, err := buildNode(def, "")
		if err != nil {
			return nil, err
		}
		tree = append(tree, n)
	}
	if err := tree.Validate(); err != nil {
		return nil, err
	}
	return tree, nil
}

func buildNode(def Definition, parent string) (Node, error) {
	where := def.Label
	if parent != "" {
		where = parent + " / " + def.Label
	}
	if def.Label == "" {
		return Node{}, fmt.Errorf("%w: group under %q has no label", ErrInvalidNode, parent)
	}

	kinds := 0
	if def.Autogenerate != "" {
		kinds++
	}
	if def.Sessions != nil {
		kinds++
	}
	if def.Items != nil {
		kinds++
	}
	if kinds != 1 {
		return Node{}, fmt.Errorf("%w: %s must set exactly one of autogenerate, sessions or items", ErrInvalidNode, where)
	}

	var n Node
	switch {
	case def.Autogenerate != "":
		n = Auto(def.Label, def.Autogenerate)
	case def.Sessions != nil:
		if def.Sessions.Category == "" {
			return Node{}, fmt.Errorf("%w: %s sessions need a category", ErrInvalidNode, where)
		}
		n = Sessions(def.Label, def.Sessions.Category, def.Sessions.Count)
	default:
		items := make([]Item, 0, len(def.Items))
		for _, child := range def.Items {
			if child.Link != "" {
				if child.Label != "" || child.Autogenerate != "" || child.Sessions != nil || child.Items != nil {
					return Node{}, fmt.Errorf("%w: link %q in %s cannot also be a group", ErrInvalidNode, child.Link, where)
				}
				items = append(items, Link(child.Link))
				continue
			}
			c, err := buildNode(child, where)
			if err != nil {
				return Node{}, err
			}
			items = append(items, Group(c))
		}
		n = Static(def.Label, items...)
	}

	if def.Collapsed != nil {
		n.Collapsed = *def.Collapsed
	}
	return n, nil
}
