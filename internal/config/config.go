// Package config resolves shell configuration from flags, environment
// variables, and the optional shell.yaml in the data directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables. Flags take precedence over these.
const (
	EnvDataDir      = "SUNSAMA_DATA_DIR"
	EnvDSN          = "SUNSAMA_DSN"
	EnvBridgeAddr   = "SUNSAMA_BRIDGE_ADDR"
	EnvBridgeSecret = "SUNSAMA_BRIDGE_SECRET"
)

const (
	FileName    = "shell.yaml"
	DBFileName  = "open-sunsama.db"
	LogFileName = "open-sunsama.log"

	// MinimizedArg is passed by the login item so the app starts hidden
	MinimizedArg = "--minimized"

	DefaultDocsURL   = "https://github.com/your-org/open-sunsama"
	DefaultIssuesURL = "https://github.com/your-org/open-sunsama/issues"
)

// File is the on-disk shell.yaml
type File struct {
	DocsURL        string `yaml:"docs_url"`
	IssuesURL      string `yaml:"issues_url"`
	BridgeAddr     string `yaml:"bridge_addr,omitempty"`
	StartMinimized bool   `yaml:"start_minimized"`
	WatchSettings  bool   `yaml:"watch_settings"`
}

// DefaultFile returns the values used when shell.yaml is absent
func DefaultFile() *File {
	return &File{
		DocsURL:       DefaultDocsURL,
		IssuesURL:     DefaultIssuesURL,
		WatchSettings: true,
	}
}

// Flags holds command-line values; zero values mean "not given"
type Flags struct {
	DataDir    string
	Minimized  bool
	BridgeAddr string
}

// Config is the resolved configuration
type Config struct {
	DataDir        string
	DSN            string
	DBPath         string
	LogPath        string
	StartMinimized bool
	BridgeAddr     string
	BridgeSecret   string
	DocsURL        string
	IssuesURL      string
	WatchSettings  bool
}

// DefaultDataDir returns ~/.config/open-sunsama
func DefaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(homeDir, ".config", "open-sunsama")
}

// Resolve applies precedence CLI flag > env var > shell.yaml > default.
// getenv is os.Getenv outside tests.
func Resolve(flags Flags, getenv func(string) string) (*Config, error) {
	cfg := &Config{}

	switch {
	case flags.DataDir != "":
		cfg.DataDir = flags.DataDir
	case getenv(EnvDataDir) != "":
		cfg.DataDir = getenv(EnvDataDir)
	default:
		cfg.DataDir = DefaultDataDir()
	}
	cfg.DBPath = filepath.Join(cfg.DataDir, DBFileName)
	cfg.LogPath = filepath.Join(cfg.DataDir, LogFileName)

	file, err := LoadYAMLOrDefault(filepath.Join(cfg.DataDir, FileName), DefaultFile)
	if err != nil {
		return nil, err
	}

	cfg.DSN = getenv(EnvDSN)
	cfg.BridgeSecret = getenv(EnvBridgeSecret)
	cfg.StartMinimized = flags.Minimized || file.StartMinimized
	cfg.WatchSettings = file.WatchSettings

	switch {
	case flags.BridgeAddr != "":
		cfg.BridgeAddr = flags.BridgeAddr
	case getenv(EnvBridgeAddr) != "":
		cfg.BridgeAddr = getenv(EnvBridgeAddr)
	default:
		cfg.BridgeAddr = file.BridgeAddr
	}

	cfg.DocsURL = file.DocsURL
	if cfg.DocsURL == "" {
		cfg.DocsURL = DefaultDocsURL
	}
	cfg.IssuesURL = file.IssuesURL
	if cfg.IssuesURL == "" {
		cfg.IssuesURL = DefaultIssuesURL
	}
	return cfg, nil
}

// EnsureDataDir creates the data directory
func (c *Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", c.DataDir, err)
	}
	return nil
}

// LoadYAML loads a YAML file into the provided struct.
func LoadYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse YAML from %s: %w", path, err)
	}
	return nil
}

// SaveYAML writes v to path, creating the parent directory.
func SaveYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// LoadYAMLOrDefault loads a YAML file over the defaults, or returns the
// defaults if the file doesn't exist. Keys missing from the file keep their
// default values.
func LoadYAMLOrDefault[T any](path string, defaultFn func() *T) (*T, error) {
	v := defaultFn()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return v, nil
	}
	if err := LoadYAML(path, v); err != nil {
		return nil, err
	}
	return v, nil
}
