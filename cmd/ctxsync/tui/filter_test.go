package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFilter_NarrowsAndMapsIndices(t *testing.T) {
	b := newTestBrowser(t, &fakeClient{}, []string{
		"/notes/ideas.md",
		"/notes/journal.md",
		"/team/AGENTS.md",
	})

	b.applyFilter("journal")
	entries := b.activeEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, "/notes/journal.md", entries[0].Path)

	// Cursor is re-clamped against the narrowed list.
	assert.Equal(t, 0, b.cursor)
}

func TestApplyFilter_EmptyQueryRestoresFullList(t *testing.T) {
	b := newTestBrowser(t, &fakeClient{}, []string{"/a.md", "/b.md"})
	b.applyFilter("a")
	b.applyFilter("")
	assert.Nil(t, b.filteredIdx)
	assert.Len(t, b.activeEntries(), 2)
}

func TestFilterPrompt_EscClearsEnterKeeps(t *testing.T) {
	b := newTestBrowser(t, &fakeClient{}, []string{"/alpha.md", "/beta.md"})

	b, _ = press(t, b, "/")
	require.True(t, b.filtering)

	b, _ = press(t, b, "b")
	require.Len(t, b.activeEntries(), 1)

	b, _ = press(t, b, "enter")
	assert.False(t, b.filtering)
	assert.Len(t, b.activeEntries(), 1, "enter keeps the matches")

	b, _ = press(t, b, "/")
	b, _ = press(t, b, "a")
	b, _ = press(t, b, "esc")
	assert.False(t, b.filtering)
	assert.Len(t, b.activeEntries(), 2, "esc drops the filter")
}

func TestToggleSource_ClearsFilter(t *testing.T) {
	b := newTestBrowser(t, &fakeClient{}, []string{"/a.md", "/b.md"})
	b.applyFilter("a")
	require.NotNil(t, b.filteredIdx)

	b, _ = press(t, b, "tab")
	assert.Nil(t, b.filteredIdx)
}
