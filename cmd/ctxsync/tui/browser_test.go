package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/contextsync/ctxsync/internal/config"
	"github.com/contextsync/ctxsync/internal/drive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient records calls and serves canned data.
type fakeClient struct {
	files       []drive.File
	listErr     error
	listCalls   int
	uploads     []string
	uploadErr   error
	downloads   []string
	downloadErr error
	content     []byte
}

func (f *fakeClient) List(ctx context.Context) ([]drive.File, error) {
	f.listCalls++
	return f.files, f.listErr
}

func (f *fakeClient) Upload(ctx context.Context, localPath string) error {
	f.uploads = append(f.uploads, localPath)
	return f.uploadErr
}

func (f *fakeClient) Download(ctx context.Context, id string) ([]byte, error) {
	f.downloads = append(f.downloads, id)
	return f.content, f.downloadErr
}

func newTestBrowser(t *testing.T, client WorkspaceClient, docs []string) Browser {
	t.Helper()
	b := NewBrowser(client, config.Config{}, docs)
	b.skillsDir = t.TempDir()
	model, _ := b.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return model.(Browser)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, b Browser, k string) (Browser, tea.Cmd) {
	t.Helper()
	model, cmd := b.Update(key(k))
	return model.(Browser), cmd
}

// --- Cursor movement ---

func TestMoveCursor_IdempotentAtBoundaries(t *testing.T) {
	b := newTestBrowser(t, &fakeClient{}, []string{"/a.md", "/b.md", "/c.md"})

	b, _ = press(t, b, "k")
	b, _ = press(t, b, "k")
	assert.Equal(t, 0, b.cursor, "repeated up at index 0 stays at 0")

	for i := 0; i < 10; i++ {
		b, _ = press(t, b, "j")
	}
	assert.Equal(t, 2, b.cursor, "repeated down sticks at the last index")
}

func TestMoveCursor_EmptyList(t *testing.T) {
	b := newTestBrowser(t, &fakeClient{}, nil)
	b, _ = press(t, b, "j")
	assert.Equal(t, 0, b.cursor)
	b, _ = press(t, b, "k")
	assert.Equal(t, 0, b.cursor)
}

// --- Source toggling and the lazy fetch ---

func TestToggleSource_ResetsCursorAndFetchesOnce(t *testing.T) {
	client := &fakeClient{files: []drive.File{{ID: "1", Name: "a.md"}}}
	b := newTestBrowser(t, client, []string{"/a.md", "/b.md", "/c.md"})

	b, _ = press(t, b, "j")
	require.Equal(t, 1, b.cursor)

	b, cmd := press(t, b, "tab")
	assert.Equal(t, SourceRemote, b.source)
	assert.Equal(t, 0, b.cursor, "toggle resets the cursor")
	assert.True(t, b.remoteLoading)
	require.NotNil(t, cmd, "first toggle to remote starts the fetch")

	// Deliver the listing; toggling away and back must not refetch.
	model, _ := b.Update(remoteListMsg{Files: client.files})
	b = model.(Browser)
	assert.False(t, b.remoteLoading)

	b, _ = press(t, b, "tab")
	b, cmd = press(t, b, "tab")
	assert.Equal(t, SourceRemote, b.source)
	assert.Nil(t, cmd, "populated cache suppresses a second fetch")
}

func TestToggleSource_NoRefetchWhileLoading(t *testing.T) {
	b := newTestBrowser(t, &fakeClient{}, nil)
	b, cmd := press(t, b, "tab")
	require.NotNil(t, cmd)
	require.True(t, b.remoteLoading)

	b, _ = press(t, b, "tab")
	b, cmd = press(t, b, "tab")
	assert.Nil(t, cmd, "in-flight fetch gates a second one")
}

func TestRemoteListError_LeavesCacheEmptyAndRetries(t *testing.T) {
	b := newTestBrowser(t, &fakeClient{}, nil)
	b, _ = press(t, b, "tab")
	require.True(t, b.remoteLoading)

	model, _ := b.Update(remoteListErrMsg{Err: errors.New("boom")})
	b = model.(Browser)
	assert.False(t, b.remoteLoading, "loading flag clears on failure")
	assert.Empty(t, b.remote)

	// A later toggle back to remote re-attempts the fetch.
	b, _ = press(t, b, "tab")
	b, cmd := press(t, b, "tab")
	assert.NotNil(t, cmd)
	assert.True(t, b.remoteLoading)
}

func TestFetchRemote_MapsFilesAndErrors(t *testing.T) {
	client := &fakeClient{files: []drive.File{{ID: "2", Name: "b"}, {ID: "1", Name: "a"}}}
	msg := fetchRemote(client)()
	listed, ok := msg.(remoteListMsg)
	require.True(t, ok)
	assert.Equal(t, 1, client.listCalls)

	entries := remoteEntries(listed.Files)
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Path: "a", Kind: KindRemote, RemoteID: "1"}, entries[0], "remote entries sort by name")

	client.listErr = errors.New("offline")
	msg = fetchRemote(client)()
	_, ok = msg.(remoteListErrMsg)
	assert.True(t, ok)
}

// --- Activation ---

func TestActivate_LocalClosesWithSelection(t *testing.T) {
	b := newTestBrowser(t, &fakeClient{}, []string{"/a.md", "/b.md"})
	b, _ = press(t, b, "j")
	b, cmd := press(t, b, "enter")

	assert.True(t, b.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	path, ok := b.Selected()
	require.True(t, ok)
	assert.Equal(t, "/b.md", path)
}

func TestActivate_RemoteStartsDownload(t *testing.T) {
	client := &fakeClient{
		files:   []drive.File{{ID: "xyz", Name: "spec.agents"}},
		content: []byte("body"),
	}
	b := newTestBrowser(t, client, nil)
	b, _ = press(t, b, "tab")
	model, _ := b.Update(remoteListMsg{Files: client.files})
	b = model.(Browser)

	b, cmd := press(t, b, "enter")
	assert.False(t, b.quitting, "remote activation waits for settlement")
	require.NotNil(t, cmd)

	msg := cmd()
	done, ok := msg.(downloadDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.Err)
	assert.Equal(t, []string{"xyz"}, client.downloads)

	// Agent-suffixed names land in the skills directory.
	assert.Contains(t, done.Dest, b.skillsDir)

	model, quit := b.Update(done)
	b = model.(Browser)
	assert.True(t, b.quitting, "browser closes once the download settles")
	require.NotNil(t, quit)
}

func TestActivate_EmptyRemoteClosesImmediately(t *testing.T) {
	b := newTestBrowser(t, &fakeClient{}, nil)
	b, _ = press(t, b, "tab")
	model, _ := b.Update(remoteListMsg{})
	b = model.(Browser)

	b, cmd := press(t, b, "enter")
	assert.True(t, b.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	_, ok := b.Selected()
	assert.False(t, ok)
}

// --- Push to remote ---

func TestPush_UploadsSelectedLocalEntry(t *testing.T) {
	client := &fakeClient{}
	b := newTestBrowser(t, client, []string{"/a.md", "/b.md"})
	b, _ = press(t, b, "j")
	b, cmd := press(t, b, "u")

	assert.False(t, b.quitting, "push keeps the browser open")
	require.NotNil(t, cmd)
	msg := cmd()
	done, ok := msg.(uploadDoneMsg)
	require.True(t, ok)
	assert.NoError(t, done.Err)
	assert.Equal(t, []string{"/b.md"}, client.uploads)
}

func TestPush_NoOpOnRemoteSourceOrEmptyList(t *testing.T) {
	client := &fakeClient{}
	b := newTestBrowser(t, client, nil)
	_, cmd := press(t, b, "u")
	assert.Nil(t, cmd, "empty list")

	b = newTestBrowser(t, client, []string{"/a.md"})
	b, _ = press(t, b, "tab")
	_, cmd = press(t, b, "u")
	assert.Nil(t, cmd, "remote source")
	assert.Empty(t, client.uploads)
}

// --- Input consumption ---

func TestUnmatchedKeysAreConsumed(t *testing.T) {
	b := newTestBrowser(t, &fakeClient{}, []string{"/a.md"})
	before := b.cursor
	b, cmd := press(t, b, "x")
	assert.Nil(t, cmd)
	assert.Equal(t, before, b.cursor)
	assert.False(t, b.quitting)
}

func TestClose_AlwaysWins(t *testing.T) {
	b := newTestBrowser(t, &fakeClient{}, []string{"/a.md"})
	b, cmd := press(t, b, "esc")
	assert.True(t, b.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

// --- Local list recomputation ---

func TestSetLocal_MemoizesOnInputs(t *testing.T) {
	b := newTestBrowser(t, &fakeClient{}, []string{"/a.md"})
	first := b.local

	b.SetLocal([]string{"/a.md"}, nil)
	assert.Equal(t, first, b.local)

	b.SetLocal([]string{"/a.md", "/b.md"}, nil)
	assert.Len(t, b.local, 2)
}
