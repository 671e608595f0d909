package ui

import (
	"fmt"
	"strings"

	"github.com/koki-develop/go-fzf"

	"github.com/jh3/course-sidebar/internal/sidebar"
)

// ResolveFunc maps a sidebar path to the page file backing it
type ResolveFunc func(path string) (string, bool)

// PickEntry presents an interactive fuzzy finder over sidebar entries.
// It returns nil when the user cancels.
func PickEntry(entries []sidebar.Entry, resolve ResolveFunc) (*sidebar.Entry, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("no sidebar entries found")
	}

	f, err := fzf.New(
		fzf.WithPrompt("Sidebar > "),
		fzf.WithInputPosition(fzf.InputPositionTop),
		fzf.WithLimit(1),
	)
	if err != nil {
		return nil, err
	}

	idxs, err := f.Find(
		entries,
		func(i int) string {
			return formatEntryLine(entries[i])
		},
		fzf.WithPreviewWindow(func(i, w, h int) string {
			if i < 0 || i >= len(entries) {
				return ""
			}
			return formatPreview(entries[i], resolve)
		}),
	)
	if err != nil {
		return nil, err
	}
	if len(idxs) == 0 {
		return nil, nil // User cancelled
	}

	return &entries[idxs[0]], nil
}

func formatEntryLine(e sidebar.Entry) string {
	return fmt.Sprintf("%-40s  %s", truncate(e.Title(), 40), e.Target())
}

func formatPreview(e sidebar.Entry, resolve ResolveFunc) string {
	var b strings.Builder

	b.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	b.WriteString(previewHeader.Render("Group: ") + e.Title() + "\n")
	b.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	if e.Directory != "" {
		b.WriteString(fmt.Sprintf("Autogenerated from: %s/\n", e.Directory))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Path: %s\n", e.Path))
	if resolve == nil {
		return b.String()
	}
	if file, ok := resolve(e.Path); ok {
		b.WriteString(fmt.Sprintf("File: %s\n", file))
	} else {
		b.WriteString(dimStyle.Render("File: (missing)") + "\n")
	}
	return b.String()
}
