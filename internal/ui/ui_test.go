package ui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jh3/course-sidebar/internal/sidebar"
)

func TestRender(t *testing.T) {
	tree := sidebar.Tree{
		sidebar.Auto("JS Dasar", "js-dasar"),
		sidebar.Static("JS Build-in Library",
			sidebar.Group(sidebar.Sessions("Number", "js-buildin-library/number", 2).Expanded()),
		),
	}

	out := Render(tree)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)

	assert.True(t, strings.HasPrefix(lines[0], "▸ "), lines[0])
	assert.Contains(t, lines[0], "JS Dasar")
	assert.Contains(t, lines[0], "auto: js-dasar/")
	assert.True(t, strings.HasPrefix(lines[1], "▸ "), lines[1])
	assert.Contains(t, lines[1], "JS Build-in Library")
	assert.Contains(t, lines[1], "(1)")
	assert.True(t, strings.HasPrefix(lines[2], "  ▾ "), lines[2])
	assert.Contains(t, lines[2], "Number")
	assert.True(t, strings.HasPrefix(lines[3], "    • "), lines[3])
	assert.Contains(t, lines[3], "js-buildin-library/number/sesi1")
	assert.Contains(t, lines[4], "js-buildin-library/number/sesi2")
}

func TestRender_Empty(t *testing.T) {
	assert.Empty(t, Render(nil))
}

func TestFormatEntryLine(t *testing.T) {
	line := formatEntryLine(sidebar.Entry{Trail: []string{"JS OOP"}, Path: "js-oop/sesi3"})
	assert.True(t, strings.HasPrefix(line, "JS OOP"))
	assert.True(t, strings.HasSuffix(line, "js-oop/sesi3"))
}

func TestFormatPreview(t *testing.T) {
	resolve := func(p string) (string, bool) {
		if p == "js-oop/sesi1" {
			return "/site/src/content/docs/js-oop/sesi1.md", true
		}
		return "", false
	}

	found := formatPreview(sidebar.Entry{Trail: []string{"JS OOP"}, Path: "js-oop/sesi1"}, resolve)
	assert.Contains(t, found, "Path: js-oop/sesi1")
	assert.Contains(t, found, "File: /site/src/content/docs/js-oop/sesi1.md")

	missing := formatPreview(sidebar.Entry{Trail: []string{"JS OOP"}, Path: "js-oop/sesi2"}, resolve)
	assert.Contains(t, missing, "(missing)")

	auto := formatPreview(sidebar.Entry{Trail: []string{"JS Dasar"}, Directory: "js-dasar"}, resolve)
	assert.Contains(t, auto, "Autogenerated from: js-dasar/")
}

func TestPickEntry_NoEntries(t *testing.T) {
	_, err := PickEntry(nil, nil)
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "Lanjutan éé", truncate("Lanjutan éé", 11))

	long := strings.Repeat("a", 38) + "é / Lanjutan"
	got := truncate(long, 40)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("a", 38)+"é…", got)
}
