package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/contextsync/ctxsync/internal/feedback"
)

func (b Browser) View() string {
	if b.quitting {
		return ""
	}
	if !b.ready {
		return "Loading..."
	}

	var sb strings.Builder
	sb.WriteString(b.viewHeader())
	sb.WriteString("\n")

	if b.filtering {
		sb.WriteString("  / " + b.filterInput.View() + "\n")
	}

	sb.WriteString(b.viewList())
	sb.WriteString(b.viewStatus())
	sb.WriteString(b.viewHelp())
	return sb.String()
}

func (b Browser) viewHeader() string {
	local := sourceInactiveStyle.Render("local")
	remote := sourceInactiveStyle.Render("remote")
	if b.source == SourceLocal {
		local = sourceActiveStyle.Render("local")
	} else {
		remote = sourceActiveStyle.Render("remote")
	}
	return titleStyle.Render("Context files") + "  " + local + " " + remote + "\n"
}

// listHeight is the viewport height left for rows after the fixed chrome.
func (b Browser) listHeight() int {
	h := b.height - 4 // header, blank, status, help
	if b.filtering {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (b Browser) viewList() string {
	if b.source == SourceRemote && b.remoteLoading {
		return loadingStyle.Render("  "+b.spin.View()+" loading workspace…") + "\n"
	}

	entries := b.activeEntries()
	if len(entries) == 0 {
		return dimStyle.Render("  (no entries)") + "\n"
	}

	var sb strings.Builder
	start, end := visibleWindow(b.listHeight(), b.cursor, len(entries))
	for i := start; i < end; i++ {
		e := entries[i]
		marker := "  "
		line := dimStyle.Render(e.Path)
		if i == b.cursor {
			marker = "> "
			line = cursorStyle.Render(e.Path)
		}
		sb.WriteString(marker + kindTag(e.Kind) + " " + line + "\n")
	}
	return sb.String()
}

func kindTag(k Kind) string {
	switch k {
	case KindAgent:
		return agentTagStyle.Render("[agent] ")
	case KindMemory:
		return memoryTagStyle.Render("[memory]")
	case KindRemote:
		return remoteTagStyle.Render("[remote]")
	default:
		return dimStyle.Render("[?]     ")
	}
}

func (b Browser) viewStatus() string {
	if !b.hasStatus {
		return "\n"
	}
	line := b.status.Message
	if b.status.Detail != "" {
		line += ": " + b.status.Detail
	}
	if b.status.Level == feedback.LevelError {
		return statusErrStyle.Render("  "+line) + "\n"
	}
	return statusInfoStyle.Render("  "+line) + "\n"
}

// viewHelp renders the contextual footer. Shortcuts depend on the active
// source: editor, reveal, and upload only apply locally.
func (b Browser) viewHelp() string {
	shortcuts := []string{
		helpKeyStyle.Render("enter") + ": open",
		helpKeyStyle.Render("tab") + ": source",
		helpKeyStyle.Render("/") + ": filter",
	}
	if b.source == SourceLocal {
		shortcuts = append(shortcuts,
			helpKeyStyle.Render("e") + ": edit",
			helpKeyStyle.Render("o") + ": folder",
			helpKeyStyle.Render("u") + ": upload",
		)
	}
	shortcuts = append(shortcuts, helpKeyStyle.Render("esc")+": close")

	content := strings.Join(shortcuts, " · ")
	if pad := b.width - 2 - ansi.StringWidth(content); pad > 0 {
		content += strings.Repeat(" ", pad)
	}
	return helpStyle.Width(b.width).Render(content)
}
