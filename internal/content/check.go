// Package content compares a sidebar tree against the pages on disk.
package content

import (
	"path"

	"github.com/jh3/course-sidebar/internal/sidebar"
)

// Report lists the differences between a sidebar and its content directory
type Report struct {
	Missing     []sidebar.Entry // links without a page
	MissingDirs []sidebar.Entry // autogenerate directories that do not exist
	Orphans     []string        // pages in a linked category that no entry references
	Pages       int
}

// OK reports whether every sidebar entry has content. Orphans are informational.
func (r Report) OK() bool {
	return len(r.Missing) == 0 && len(r.MissingDirs) == 0
}

// Check resolves every entry of tree against the scanner's root
func Check(tree sidebar.Tree, s *Scanner) (Report, error) {
	slugs, err := s.ScanAll()
	if err != nil {
		return Report{}, err
	}

	var report Report
	report.Pages = len(slugs)

	linked := make(map[string]bool)
	categories := make(map[string]bool)
	for _, e := range tree.Entries() {
		if e.Directory != "" {
			if !s.HasDir(e.Directory) {
				report.MissingDirs = append(report.MissingDirs, e)
			}
			continue
		}
		linked[e.Path] = true
		categories[path.Dir(e.Path)] = true
		if _, ok := s.Resolve(e.Path); !ok {
			report.Missing = append(report.Missing, e)
		}
	}

	for _, slug := range slugs {
		if linked[slug] || linked[path.Dir(slug)] {
			continue
		}
		if categories[path.Dir(slug)] {
			report.Orphans = append(report.Orphans, slug)
		}
	}
	return report, nil
}
