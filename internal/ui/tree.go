package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jh3/course-sidebar/internal/sidebar"
)

// Styles
var (
	groupStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	linkStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	autoStyle     = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("81"))
	previewHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
)

const indentWidth = 2

// Render draws the tree as an indented outline. Collapsed groups are
// marked ▸ and expanded groups ▾.
func Render(tree sidebar.Tree) string {
	var b strings.Builder
	for i := range tree {
		renderNode(&b, &tree[i], 0)
	}
	return b.String()
}

func renderNode(b *strings.Builder, n *sidebar.Node, depth int) {
	indent := strings.Repeat(" ", depth*indentWidth)
	marker := "▾"
	if n.Collapsed {
		marker = "▸"
	}

	if n.Autogenerate != nil {
		b.WriteString(fmt.Sprintf("%s%s %s %s\n", indent, marker, groupStyle.Render(n.Label),
			autoStyle.Render("(auto: "+n.Autogenerate.Directory+"/)")))
		return
	}

	b.WriteString(fmt.Sprintf("%s%s %s %s\n", indent, marker, groupStyle.Render(n.Label),
		dimStyle.Render(fmt.Sprintf("(%d)", len(n.Items)))))

	childIndent := strings.Repeat(" ", (depth+1)*indentWidth)
	for _, item := range n.Items {
		if item.Node != nil {
			renderNode(b, item.Node, depth+1)
			continue
		}
		b.WriteString(fmt.Sprintf("%s• %s\n", childIndent, linkStyle.Render(item.Path)))
	}
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-1]) + "…"
}
