package paths

import (
	"os"
	"path/filepath"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// SyncDir returns ~/.ctxsync.
func SyncDir() string {
	return filepath.Join(home(), ".ctxsync")
}

// ConfigFile returns ~/.ctxsync/config.yaml.
func ConfigFile() string {
	return filepath.Join(SyncDir(), "config.yaml")
}

// SkillsDir returns ~/.ctxsync/skills, the destination for downloaded
// agent-definition files.
func SkillsDir() string {
	return filepath.Join(SyncDir(), "skills")
}

// LogFile returns ~/.ctxsync/debug.log.
func LogFile() string {
	return filepath.Join(SyncDir(), "debug.log")
}
