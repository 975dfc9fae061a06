package bootstrap

import (
	"path/filepath"
	"testing"

	"github.com/open-sunsama/shell/internal/config"
	"github.com/open-sunsama/shell/internal/domain"
)

func TestOpenSettingsPersists(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{DataDir: dir, DBPath: filepath.Join(dir, config.DBFileName)}

	s, err := OpenSettings(cfg)
	if err != nil {
		t.Fatalf("OpenSettings: %v", err)
	}
	s.Store.Set(domain.SettingsKey, []byte(`{"theme":"dark"}`))
	if err := s.Store.Persist(); err != nil {
		t.Fatalf("Persist: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := OpenSettings(cfg)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	got, ok := reopened.Store.Get(domain.SettingsKey)
	if !ok || string(got) != `{"theme":"dark"}` {
		t.Errorf("Get = %q, %v", got, ok)
	}
}

func TestOpenSettingsBadDSN(t *testing.T) {
	cfg := &config.Config{DSN: "redis://localhost"}
	if _, err := OpenSettings(cfg); err == nil {
		t.Error("expected error for unsupported DSN")
	}
}

func TestLoginCommand(t *testing.T) {
	cmd := LoginCommand()
	if len(cmd) != 2 || cmd[1] != config.MinimizedArg || cmd[0] == "" {
		t.Errorf("LoginCommand() = %v", cmd)
	}
}
