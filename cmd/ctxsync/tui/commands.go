package tui

import (
	"context"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/contextsync/ctxsync/internal/drive"
	"github.com/contextsync/ctxsync/internal/editor"
	"github.com/contextsync/ctxsync/internal/feedback"
	"github.com/contextsync/ctxsync/internal/logx"
)

// WorkspaceClient is the slice of the drive client the browser needs. Tests
// substitute a fake.
type WorkspaceClient interface {
	List(ctx context.Context) ([]drive.File, error)
	Upload(ctx context.Context, localPath string) error
	Download(ctx context.Context, id string) ([]byte, error)
}

// waitForFeedback blocks on the feedback bus and converts the next event
// into a message. The browser re-arms this command after every delivery.
func waitForFeedback() tea.Cmd {
	return func() tea.Msg {
		return FeedbackMsg(feedback.Next())
	}
}

// fetchRemote lists the workspace files. No timeout is imposed here; the
// drive client owns transport timeouts.
func fetchRemote(client WorkspaceClient) tea.Cmd {
	return func() tea.Msg {
		files, err := client.List(context.Background())
		if err != nil {
			return remoteListErrMsg{Err: err}
		}
		return remoteListMsg{Files: files}
	}
}

// uploadEntry pushes a local file to the workspace.
func uploadEntry(client WorkspaceClient, path string) tea.Cmd {
	return func() tea.Msg {
		err := client.Upload(context.Background(), path)
		return uploadDoneMsg{Path: path, Err: err}
	}
}

// downloadEntry fetches a remote file and writes it locally. Agent-named
// files land in destDirFor's skills directory, everything else in the
// process working directory; either is created when absent. A same-named
// local file is overwritten.
func downloadEntry(client WorkspaceClient, id, name, skillsDir string) tea.Cmd {
	return func() tea.Msg {
		data, err := client.Download(context.Background(), id)
		if err != nil {
			return downloadDoneMsg{Name: name, Err: err}
		}
		dir := destDirFor(name, skillsDir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return downloadDoneMsg{Name: name, Err: err}
		}
		dest := filepath.Join(dir, name)
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return downloadDoneMsg{Name: name, Err: err}
		}
		return downloadDoneMsg{Name: name, Dest: dest}
	}
}

// destDirFor decides where a downloaded file belongs from its name alone:
// agent definitions go to the per-user skills directory, anything else to
// the working directory.
func destDirFor(name, skillsDir string) string {
	if IsAgentName(name) {
		return skillsDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// openEditor hands the terminal to the external editor and reclaims it when
// the process exits. bubbletea releases raw mode before the spawn and
// restores it afterwards on every exit path.
func openEditor(preferred, path string) tea.Cmd {
	cmd := editor.Resolve(preferred, path)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorDoneMsg{Err: err}
	})
}

// openFolder reveals the entry's containing directory in the platform file
// manager. Fire-and-forget: start errors are logged, never surfaced.
func openFolder(path string) tea.Cmd {
	return func() tea.Msg {
		cmd := editor.OpenFolder(filepath.Dir(path))
		if err := cmd.Start(); err != nil {
			logx.Warnf("opening folder for %s: %v", path, err)
		}
		return nil
	}
}
