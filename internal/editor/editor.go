// Package editor resolves the external editor and file-manager commands used
// to open local entries.
package editor

import (
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// graphical editors detach from the terminal; they need a wait flag so the
// spawned process blocks until the user closes the file.
var graphical = map[string]bool{
	"code":          true,
	"code-insiders": true,
	"subl":          true,
	"atom":          true,
	"gedit":         true,
	"notepad":       true,
}

// Resolve returns the editor command and arguments for opening path. The
// resolution order is: the configured preferred editor, $VISUAL, $EDITOR,
// then the platform default (notepad on Windows, vi elsewhere).
func Resolve(preferred, path string) *exec.Cmd {
	name, args := resolveCommand(preferred)
	if IsGraphical(name) && name != "notepad" {
		args = append(args, "--wait")
	}
	args = append(args, path)
	return exec.Command(name, args...)
}

// resolveCommand picks the editor executable and any configured arguments.
func resolveCommand(preferred string) (string, []string) {
	for _, candidate := range []string{preferred, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		fields := strings.Fields(candidate)
		if len(fields) > 0 {
			return fields[0], fields[1:]
		}
	}
	if runtime.GOOS == "windows" {
		return "notepad", nil
	}
	return "vi", nil
}

// IsGraphical reports whether the editor runs outside the terminal.
func IsGraphical(name string) bool {
	return graphical[strings.ToLower(name)]
}

// OpenFolder returns the platform file-manager command revealing dir.
func OpenFolder(dir string) *exec.Cmd {
	switch runtime.GOOS {
	case "windows":
		return exec.Command("explorer", dir)
	case "darwin":
		return exec.Command("open", dir)
	default:
		return exec.Command("xdg-open", dir)
	}
}
