package tui

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/contextsync/ctxsync/internal/config"
	"github.com/contextsync/ctxsync/internal/drive"
	"github.com/contextsync/ctxsync/internal/feedback"
	"github.com/contextsync/ctxsync/internal/paths"
)

// Browser is the modal context-file browser. It keeps the locally resolved
// entries and the lazily fetched workspace files behind a single cursor and
// dispatches keys to the matching action.
type Browser struct {
	client    WorkspaceClient
	editorCmd string
	skillsDir string

	local  []Entry
	remote []Entry // cached for the session once fetched

	// memo key for the last ResolveEntries inputs, so unchanged inputs
	// don't re-derive the list.
	resolveKey string

	source        Source
	cursor        int
	remoteLoading bool

	filtering   bool
	filterInput textinput.Model
	filteredIdx []int // visible index -> active list index; nil = no filter

	spin      spinner.Model
	status    feedback.Event
	hasStatus bool

	width, height int
	ready         bool
	quitting      bool
	selected      string
}

// NewBrowser creates the browser over the given workspace client, resolving
// the local list from docs and the registered agent definitions.
func NewBrowser(client WorkspaceClient, cfg config.Config, docs []string) Browser {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = loadingStyle

	fi := textinput.New()
	fi.Placeholder = "filter"
	fi.CharLimit = 128
	fi.Width = 30

	b := Browser{
		client:      client,
		editorCmd:   cfg.Editor,
		skillsDir:   paths.SkillsDir(),
		spin:        sp,
		filterInput: fi,
	}
	b.SetLocal(docs, cfg.Agents)
	return b
}

// SetLocal re-derives the local list from its source data. The computation
// is pure, so identical inputs are skipped via a structural memo key.
func (b *Browser) SetLocal(docs []string, defs []config.AgentDef) {
	var key strings.Builder
	for _, d := range docs {
		key.WriteString(d)
		key.WriteByte(0)
	}
	key.WriteByte(1)
	for _, def := range defs {
		key.WriteString(def.File)
		key.WriteByte(0)
	}
	if k := key.String(); k != b.resolveKey || b.resolveKey == "" {
		b.resolveKey = k
		b.local = ResolveEntries(docs, defs)
		if b.source == SourceLocal {
			b.cursor = clampCursor(b.cursor, len(b.activeEntries()))
		}
	}
}

// Selected returns the local entry path highlighted when the browser was
// activated and closed, if any.
func (b Browser) Selected() (string, bool) {
	return b.selected, b.selected != ""
}

func (b Browser) Init() tea.Cmd {
	return waitForFeedback()
}

// --- Key dispatch ---

// binding is one level in the action priority table. The first binding whose
// key matches wins; a failing guard consumes the key as a no-op, never falls
// through to a later binding.
type binding struct {
	keys    []string
	guard   func(*Browser) bool
	handler func(*Browser) tea.Cmd
}

func localSelection(b *Browser) bool {
	if b.source != SourceLocal {
		return false
	}
	_, ok := b.selectedEntry()
	return ok
}

// browseBindings is the authoritative action priority order.
var browseBindings = []binding{
	{keys: []string{"esc", "q", "ctrl+c"}, handler: (*Browser).close},
	{keys: []string{"enter"}, handler: (*Browser).activate},
	{keys: []string{"u"}, guard: localSelection, handler: (*Browser).push},
	{keys: []string{"tab", "r"}, handler: (*Browser).toggleSource},
	{keys: []string{"down", "j"}, handler: func(b *Browser) tea.Cmd { b.moveCursor(+1); return nil }},
	{keys: []string{"up", "k"}, handler: func(b *Browser) tea.Cmd { b.moveCursor(-1); return nil }},
	{keys: []string{"e"}, guard: localSelection, handler: (*Browser).edit},
	{keys: []string{"o"}, guard: localSelection, handler: (*Browser).reveal},
	{keys: []string{"/"}, handler: (*Browser).startFilter},
}

// handleKey walks the binding table. Every key event is consumed, matched or
// not, so nothing falls through to handlers below the overlay.
func (b Browser) handleKey(msg tea.KeyMsg) (Browser, tea.Cmd) {
	key := msg.String()
	for _, bind := range browseBindings {
		for _, k := range bind.keys {
			if k != key {
				continue
			}
			if bind.guard != nil && !bind.guard(&b) {
				return b, nil
			}
			return b, bind.handler(&b)
		}
	}
	return b, nil
}

func (b *Browser) close() tea.Cmd {
	b.quitting = true
	return tea.Quit
}

// activate runs the selection. A remote entry with an id starts a download
// and the browser closes once it settles; everything else closes right away.
func (b *Browser) activate() tea.Cmd {
	e, ok := b.selectedEntry()
	if ok && b.source == SourceRemote && e.RemoteID != "" {
		feedback.Info("downloading " + e.Path)
		return downloadEntry(b.client, e.RemoteID, e.Path, b.skillsDir)
	}
	if ok && b.source == SourceLocal {
		b.selected = e.Path
	}
	b.quitting = true
	return tea.Quit
}

// push uploads the selected local entry. The browser stays open.
func (b *Browser) push() tea.Cmd {
	e, _ := b.selectedEntry()
	feedback.Info("uploading " + filepath.Base(e.Path))
	return uploadEntry(b.client, e.Path)
}

// toggleSource flips local/remote and resets the cursor. Flipping to remote
// with an empty cache starts the one lazy fetch; the in-flight flag keeps a
// second toggle from refetching.
func (b *Browser) toggleSource() tea.Cmd {
	if b.source == SourceLocal {
		b.source = SourceRemote
	} else {
		b.source = SourceLocal
	}
	b.cursor = 0
	b.clearFilter()
	if b.source == SourceRemote && len(b.remote) == 0 && !b.remoteLoading {
		b.remoteLoading = true
		return tea.Batch(b.spin.Tick, fetchRemote(b.client))
	}
	return nil
}

func (b *Browser) moveCursor(delta int) {
	b.cursor = clampCursor(b.cursor+delta, len(b.activeEntries()))
}

func (b *Browser) edit() tea.Cmd {
	e, _ := b.selectedEntry()
	return openEditor(b.editorCmd, e.Path)
}

func (b *Browser) reveal() tea.Cmd {
	e, _ := b.selectedEntry()
	return openFolder(e.Path)
}

// --- Update ---

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.ready = true
		return b, nil

	case spinner.TickMsg:
		if !b.remoteLoading {
			return b, nil
		}
		var cmd tea.Cmd
		b.spin, cmd = b.spin.Update(msg)
		return b, cmd

	case remoteListMsg:
		b.remoteLoading = false
		b.remote = remoteEntries(msg.Files)
		b.cursor = clampCursor(b.cursor, len(b.activeEntries()))
		return b, nil

	case remoteListErrMsg:
		// Cache stays empty so the next toggle to remote retries.
		b.remoteLoading = false
		feedback.Error("loading workspace failed", msg.Err.Error())
		return b, nil

	case uploadDoneMsg:
		name := filepath.Base(msg.Path)
		if msg.Err != nil {
			feedback.Error("upload failed: "+name, msg.Err.Error())
		} else {
			feedback.Info("uploaded " + name)
		}
		return b, nil

	case downloadDoneMsg:
		if msg.Err != nil {
			feedback.Error("download failed: "+msg.Name, msg.Err.Error())
		} else {
			feedback.Info("downloaded " + msg.Name + " to " + msg.Dest)
		}
		b.quitting = true
		return b, tea.Quit

	case editorDoneMsg:
		if msg.Err != nil {
			feedback.Error("editor exited with an error", msg.Err.Error())
		}
		return b, nil

	case FeedbackMsg:
		b.status = feedback.Event(msg)
		b.hasStatus = true
		return b, waitForFeedback()

	case tea.KeyMsg:
		if b.filtering {
			return b.updateFilter(msg)
		}
		return b.handleKey(msg)
	}
	return b, nil
}

// --- List addressing ---

// sourceEntries returns the unfiltered list for the active source.
func (b *Browser) sourceEntries() []Entry {
	if b.source == SourceRemote {
		return b.remote
	}
	return b.local
}

// activeEntries returns the list the cursor addresses: the active source,
// narrowed by the fuzzy filter when one is set.
func (b *Browser) activeEntries() []Entry {
	list := b.sourceEntries()
	if b.filteredIdx == nil {
		return list
	}
	out := make([]Entry, 0, len(b.filteredIdx))
	for _, i := range b.filteredIdx {
		if i >= 0 && i < len(list) {
			out = append(out, list[i])
		}
	}
	return out
}

func (b *Browser) selectedEntry() (Entry, bool) {
	list := b.activeEntries()
	if len(list) == 0 || b.cursor < 0 || b.cursor >= len(list) {
		return Entry{}, false
	}
	return list[b.cursor], true
}

// remoteEntries converts a workspace listing into browse entries, sorted by
// name for a stable order.
func remoteEntries(files []drive.File) []Entry {
	entries := make([]Entry, 0, len(files))
	for _, f := range files {
		entries = append(entries, Entry{Path: f.Name, Kind: KindRemote, RemoteID: f.ID})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries
}
