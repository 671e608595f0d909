package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// extensions are the page formats the site framework renders
var extensions = []string{".md", ".mdx"}

// Scanner finds content pages below a root directory
type Scanner struct {
	baseDir string
}

// NewScanner creates a scanner rooted at dir
func NewScanner(dir string) *Scanner {
	return &Scanner{baseDir: dir}
}

// Root returns the directory being scanned
func (s *Scanner) Root() string {
	return s.baseDir
}

// ScanAll returns the slug of every page, e.g. "js-oop/sesi1", in lexical order.
// Hidden entries and files starting with "_" are skipped.
func (s *Scanner) ScanAll() ([]string, error) {
	info, err := os.Stat(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("content directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content directory %s is not a directory", s.baseDir)
	}

	var slugs []string
	err = filepath.WalkDir(s.baseDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if path != s.baseDir && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), "_") {
			return nil
		}
		ext := filepath.Ext(path)
		if !isPage(ext) {
			return nil
		}
		rel, err := filepath.Rel(s.baseDir, path)
		if err != nil {
			return nil
		}
		slugs = append(slugs, filepath.ToSlash(strings.TrimSuffix(rel, ext)))
		return nil
	})

	return slugs, err
}

// Resolve finds the page file for a sidebar path, trying each page
// extension and then an index page inside a directory of that name
func (s *Scanner) Resolve(slug string) (string, bool) {
	base := filepath.Join(s.baseDir, filepath.FromSlash(slug))
	candidates := make([]string, 0, 2*len(extensions))
	for _, ext := range extensions {
		candidates = append(candidates, base+ext)
	}
	for _, ext := range extensions {
		candidates = append(candidates, filepath.Join(base, "index"+ext))
	}

	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, true
		}
	}
	return "", false
}

// HasDir reports whether dir exists below the root
func (s *Scanner) HasDir(dir string) bool {
	info, err := os.Stat(filepath.Join(s.baseDir, filepath.FromSlash(dir)))
	return err == nil && info.IsDir()
}

func isPage(ext string) bool {
	for _, e := range extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}
