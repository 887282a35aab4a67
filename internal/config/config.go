package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// AgentDef is one registered agent definition. File is the optional backing
// file on disk; definitions without a backing file are still valid registry
// entries but contribute nothing to the browsable list.
type AgentDef struct {
	Name string `yaml:"name"`
	File string `yaml:"file,omitempty"`
}

// Config represents ~/.ctxsync/config.yaml.
type Config struct {
	Version   string     `yaml:"version"`
	Token     string     `yaml:"token,omitempty"`
	Editor    string     `yaml:"editor,omitempty"`
	Documents []string   `yaml:"documents,omitempty"`
	Agents    []AgentDef `yaml:"agents,omitempty"`
}

// Parse parses config.yaml bytes into a Config.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Load reads and parses the config file at path. A missing file yields the
// zero Config without error so first runs work before setup.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Save writes the config to path, creating parent directories as needed.
func Save(path string, cfg Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
