package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// startFilter opens the fuzzy-filter prompt over the active list.
func (b *Browser) startFilter() tea.Cmd {
	b.filtering = true
	b.filterInput.SetValue("")
	b.filterInput.Focus()
	return textinput.Blink
}

// updateFilter handles keys while the filter prompt is open. Esc drops the
// filter, enter keeps the current matches and returns focus to the list.
func (b Browser) updateFilter(msg tea.KeyMsg) (Browser, tea.Cmd) {
	switch msg.String() {
	case "esc":
		b.filtering = false
		b.clearFilter()
		return b, nil
	case "enter":
		b.filtering = false
		b.filterInput.Blur()
		return b, nil
	}

	var cmd tea.Cmd
	b.filterInput, cmd = b.filterInput.Update(msg)
	b.applyFilter(b.filterInput.Value())
	return b, cmd
}

// applyFilter narrows the active list to fuzzy matches of query, mapping
// visible indices back to the source list. The cursor is re-clamped against
// the narrowed list.
func (b *Browser) applyFilter(query string) {
	if query == "" {
		b.filteredIdx = nil
		b.cursor = clampCursor(b.cursor, len(b.activeEntries()))
		return
	}
	list := b.sourceEntries()
	targets := make([]string, len(list))
	for i, e := range list {
		targets[i] = e.Path
	}
	matches := fuzzy.Find(query, targets)
	idx := make([]int, len(matches))
	for i, m := range matches {
		idx[i] = m.Index
	}
	b.filteredIdx = idx
	b.cursor = clampCursor(b.cursor, len(idx))
}

// clearFilter resets the filter state entirely.
func (b *Browser) clearFilter() {
	b.filteredIdx = nil
	b.filtering = false
	b.filterInput.SetValue("")
	b.filterInput.Blur()
}
