// Package site describes the options handed to the Starlight integration and
// writes them in a format the site's astro config can import.
package site

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jh3/course-sidebar/internal/sidebar"
)

// ErrUnknownFormat is returned for output formats other than json and yaml
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects the encoding of generated output
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat normalizes a user-supplied format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (want json or yaml)", ErrUnknownFormat, s)
	}
}

// SocialLink is an icon link shown in the site header
type SocialLink struct {
	Icon  string `json:"icon" yaml:"icon"`
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
}

// Markdown lists the remark/rehype plugins the site loads. Only the names are
// recorded; the framework resolves and runs them.
type Markdown struct {
	RemarkPlugins []string `json:"remarkPlugins" yaml:"remarkPlugins"`
	RehypePlugins []string `json:"rehypePlugins" yaml:"rehypePlugins"`
}

// Options mirrors the Starlight integration options
type Options struct {
	Title     string       `json:"title" yaml:"title"`
	CustomCSS []string     `json:"customCss,omitempty" yaml:"customCss,omitempty"`
	Social    []SocialLink `json:"social,omitempty" yaml:"social,omitempty"`
	Markdown  *Markdown    `json:"markdown,omitempty" yaml:"markdown,omitempty"`
	Sidebar   sidebar.Tree `json:"sidebar" yaml:"sidebar"`
}

// Default returns the JS Course site options around tree
func Default(tree sidebar.Tree) Options {
	return Options{
		Title:     "JS Course",
		CustomCSS: []string{"./src/mathjax.css"},
		Social: []SocialLink{
			{Icon: "github", Label: "GitHub", Href: "https://github.com/withastro/starlight"},
		},
		Markdown: &Markdown{
			RemarkPlugins: []string{"remark-math"},
			RehypePlugins: []string{"rehype-mathjax"},
		},
		Sidebar: tree,
	}
}

// Write encodes v to w in the given format
func Write(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
