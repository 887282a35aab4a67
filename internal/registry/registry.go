// Package registry derives the local candidate documents for browsing: the
// explicitly configured document paths, conventional context files discovered
// in a project directory, and the registered agent definitions.
package registry

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/contextsync/ctxsync/internal/config"
)

// conventional context file names probed at the project root.
var wellKnown = []string{"AGENTS.md", "CLAUDE.md", "NOTES.md"}

// Definitions returns the registered agent definitions from the config.
func Definitions(cfg config.Config) []config.AgentDef {
	return cfg.Agents
}

// KnownDocuments returns the configured document paths plus any conventional
// context files found under root. Paths are returned as given; deduplication
// is the resolver's job.
func KnownDocuments(cfg config.Config, root string) []string {
	docs := append([]string(nil), cfg.Documents...)
	if root == "" {
		return docs
	}

	for _, name := range wellKnown {
		p := filepath.Join(root, name)
		if fileExists(p) {
			docs = append(docs, p)
		}
	}

	// Memory notes live one level down in <root>/memory.
	memDir := filepath.Join(root, "memory")
	entries, err := os.ReadDir(memDir)
	if err != nil {
		return docs
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".md") {
			continue
		}
		docs = append(docs, filepath.Join(memDir, e.Name()))
	}
	return docs
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
