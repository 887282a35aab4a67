package tui

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/contextsync/ctxsync/internal/config"
)

// Kind classifies a browsable entry.
type Kind int

const (
	KindAgent Kind = iota
	KindMemory
	KindRemote
	KindUnknown
)

// String returns the display name for a kind. The resolver sorts on this
// name, so the browse list order is agent, memory, remote, unknown.
func (k Kind) String() string {
	switch k {
	case KindAgent:
		return "agent"
	case KindMemory:
		return "memory"
	case KindRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// Entry is one browsable item, local or remote.
type Entry struct {
	Path     string // filesystem path, or display name for remote entries
	Kind     Kind
	RemoteID string // set only for remote entries; required for download
}

// IsAgentName reports whether a file name follows the agent-definition
// naming convention. The check is case-insensitive.
func IsAgentName(name string) bool {
	base := strings.ToLower(filepath.Base(name))
	return base == "agents.md" ||
		strings.HasSuffix(base, ".agents") ||
		strings.HasSuffix(base, ".agents.md")
}

// ResolveEntries builds the local browse list from the known document paths
// and the registered agent definitions. Backing paths and document paths are
// unioned with duplicates collapsed by path; registry membership classifies a
// path as agent regardless of its name. The result is sorted by kind display
// name, then path, so the order is independent of input iteration order.
func ResolveEntries(docs []string, defs []config.AgentDef) []Entry {
	registered := make(map[string]bool, len(defs))
	for _, def := range defs {
		if def.File != "" {
			registered[def.File] = true
		}
	}

	seen := make(map[string]bool)
	var entries []Entry
	add := func(path string) {
		if path == "" || seen[path] {
			return
		}
		seen[path] = true
		kind := KindMemory
		if registered[path] || IsAgentName(path) {
			kind = KindAgent
		}
		entries = append(entries, Entry{Path: path, Kind: kind})
	}

	for _, def := range defs {
		add(def.File)
	}
	for _, doc := range docs {
		add(doc)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Kind != entries[j].Kind {
			return entries[i].Kind.String() < entries[j].Kind.String()
		}
		return entries[i].Path < entries[j].Path
	})
	return entries
}
