package config

import (
	"os"
	"path/filepath"
	"testing"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Resolve(Flags{DataDir: dir}, envMap(nil))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.DBPath != filepath.Join(dir, DBFileName) || cfg.LogPath != filepath.Join(dir, LogFileName) {
		t.Errorf("paths = %s %s", cfg.DBPath, cfg.LogPath)
	}
	if cfg.DocsURL != DefaultDocsURL || cfg.IssuesURL != DefaultIssuesURL {
		t.Errorf("urls = %s %s", cfg.DocsURL, cfg.IssuesURL)
	}
	if !cfg.WatchSettings || cfg.StartMinimized || cfg.BridgeAddr != "" || cfg.DSN != "" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestResolvePrecedence(t *testing.T) {
	flagDir := t.TempDir()
	envDir := t.TempDir()

	tests := []struct {
		name       string
		flags      Flags
		env        map[string]string
		wantDir    string
		wantBridge string
	}{
		{"flag wins", Flags{DataDir: flagDir, BridgeAddr: "127.0.0.1:1"},
			map[string]string{EnvDataDir: envDir, EnvBridgeAddr: "127.0.0.1:2"}, flagDir, "127.0.0.1:1"},
		{"env next", Flags{}, map[string]string{EnvDataDir: envDir, EnvBridgeAddr: "127.0.0.1:2"}, envDir, "127.0.0.1:2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Resolve(tt.flags, envMap(tt.env))
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if cfg.DataDir != tt.wantDir || cfg.BridgeAddr != tt.wantBridge {
				t.Errorf("dir = %s bridge = %s", cfg.DataDir, cfg.BridgeAddr)
			}
		})
	}
}

func TestResolveFile(t *testing.T) {
	dir := t.TempDir()
	content := "docs_url: https://docs.example.com\nstart_minimized: true\nwatch_settings: false\nbridge_addr: 127.0.0.1:9999\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Resolve(Flags{DataDir: dir}, envMap(map[string]string{EnvDSN: "mysql://u:p@tcp(db)/s", EnvBridgeSecret: "x"}))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.DocsURL != "https://docs.example.com" {
		t.Errorf("DocsURL = %s", cfg.DocsURL)
	}
	// missing key keeps its default
	if cfg.IssuesURL != DefaultIssuesURL {
		t.Errorf("IssuesURL = %s", cfg.IssuesURL)
	}
	if !cfg.StartMinimized || cfg.WatchSettings || cfg.BridgeAddr != "127.0.0.1:9999" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.DSN != "mysql://u:p@tcp(db)/s" || cfg.BridgeSecret != "x" {
		t.Errorf("env not applied: %+v", cfg)
	}
}

func TestResolveBadFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("docs_url: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Resolve(Flags{DataDir: dir}, envMap(nil)); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	want := &File{DocsURL: "https://a", IssuesURL: "https://b", StartMinimized: true}
	if err := SaveYAML(path, want); err != nil {
		t.Fatalf("SaveYAML: %v", err)
	}
	got, err := LoadYAMLOrDefault(path, DefaultFile)
	if err != nil {
		t.Fatalf("LoadYAMLOrDefault: %v", err)
	}
	if *got != *want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
