package tui

import (
	"github.com/contextsync/ctxsync/internal/drive"
	"github.com/contextsync/ctxsync/internal/feedback"
)

// Source identifies which list is being browsed.
type Source int

const (
	SourceLocal Source = iota
	SourceRemote
)

// String returns the display name for a source.
func (s Source) String() string {
	if s == SourceRemote {
		return "remote"
	}
	return "local"
}

// --- Messages ---

// FeedbackMsg delivers one event from the process-wide feedback bus.
type FeedbackMsg feedback.Event

// remoteListMsg carries a successful workspace listing.
type remoteListMsg struct{ Files []drive.File }

// remoteListErrMsg carries a failed workspace listing.
type remoteListErrMsg struct{ Err error }

// uploadDoneMsg reports a settled upload.
type uploadDoneMsg struct {
	Path string
	Err  error
}

// downloadDoneMsg reports a settled download. Dest is the written local path
// on success.
type downloadDoneMsg struct {
	Name string
	Dest string
	Err  error
}

// editorDoneMsg reports the external editor process exiting.
type editorDoneMsg struct{ Err error }
