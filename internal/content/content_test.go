package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jh3/course-sidebar/internal/sidebar"
)

// writePages creates empty page files below root
func writePages(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("---\ntitle: x\n---\n"), 0644))
	}
}

func TestScanAll(t *testing.T) {
	root := t.TempDir()
	writePages(t, root,
		"js-oop/sesi1.md",
		"js-oop/sesi2.mdx",
		"js-oop/_draft.md",
		"js-oop/notes.txt",
		".hidden/secret.md",
		"js-dasar/intro.md",
	)

	slugs, err := NewScanner(root).ScanAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"js-dasar/intro", "js-oop/sesi1", "js-oop/sesi2"}, slugs)
}

func TestScanAll_MissingRoot(t *testing.T) {
	_, err := NewScanner(filepath.Join(t.TempDir(), "nope")).ScanAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	writePages(t, root, "a/sesi1.md", "a/sesi2.mdx", "a/sesi3/index.md")
	s := NewScanner(root)

	tests := []struct {
		slug string
		want string
		ok   bool
	}{
		{slug: "a/sesi1", want: filepath.Join(root, "a", "sesi1.md"), ok: true},
		{slug: "a/sesi2", want: filepath.Join(root, "a", "sesi2.mdx"), ok: true},
		{slug: "a/sesi3", want: filepath.Join(root, "a", "sesi3", "index.md"), ok: true},
		{slug: "a/sesi4"},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			got, ok := s.Resolve(tt.slug)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheck(t *testing.T) {
	root := t.TempDir()
	writePages(t, root,
		"js-dasar/intro.md",
		"js-oop/sesi1.md",
		"js-oop/sesi2.md",
		"js-oop/sesi9.md",
		"unrelated/page.md",
	)

	tree := sidebar.Tree{
		sidebar.Auto("JS Dasar", "js-dasar"),
		sidebar.Auto("JS Module", "js-module"),
		sidebar.Sessions("JS OOP", "js-oop", 3),
	}

	report, err := Check(tree, NewScanner(root))
	require.NoError(t, err)

	assert.False(t, report.OK())
	assert.Equal(t, 5, report.Pages)
	require.Len(t, report.Missing, 1)
	assert.Equal(t, "js-oop/sesi3", report.Missing[0].Path)
	require.Len(t, report.MissingDirs, 1)
	assert.Equal(t, "js-module", report.MissingDirs[0].Directory)
	assert.Equal(t, []string{"js-oop/sesi9"}, report.Orphans)
}

func TestCheck_OK(t *testing.T) {
	root := t.TempDir()
	writePages(t, root, "js-async/sesi1.md", "js-async/sesi2/index.mdx")

	report, err := Check(sidebar.Tree{sidebar.Sessions("JS Async", "js-async", 2)}, NewScanner(root))
	require.NoError(t, err)

	assert.True(t, report.OK())
	assert.Empty(t, report.Orphans)
}
