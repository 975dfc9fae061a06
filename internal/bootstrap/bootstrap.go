// Package bootstrap assembles the pieces shared by the desktop app and
// shellctl: the settings database and the desktop capability set.
package bootstrap

import (
	"fmt"
	"log"
	"os"

	"github.com/open-sunsama/shell/internal/config"
	"github.com/open-sunsama/shell/internal/platform"
	"github.com/open-sunsama/shell/internal/repository/cached"
	"github.com/open-sunsama/shell/internal/repository/gormdb"
	"github.com/open-sunsama/shell/internal/version"
)

const autostartName = "open-sunsama"

// Settings is the opened settings persistence stack
type Settings struct {
	DB    *gormdb.DB
	Repo  *gormdb.SystemSettingRepository
	Store *cached.SettingsStore
}

// OpenSettings opens the database (DSN > default SQLite path) and loads
// every setting into memory.
func OpenSettings(cfg *config.Config) (*Settings, error) {
	var db *gormdb.DB
	var err error
	if cfg.DSN != "" {
		log.Printf("[DB] Using database DSN from %s", config.EnvDSN)
		db, err = gormdb.NewDBWithDSN(cfg.DSN)
	} else {
		db, err = gormdb.NewDB(cfg.DBPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repo := gormdb.NewSystemSettingRepository(db)
	store := cached.NewSettingsStore(repo)
	if err := store.Load(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Settings{DB: db, Repo: repo, Store: store}, nil
}

func (s *Settings) Close() error {
	return s.DB.Close()
}

// LoginCommand is the command line registered for auto-launch
func LoginCommand() []string {
	exe, err := os.Executable()
	if err != nil {
		log.Printf("[AutoLaunch] Cannot resolve executable, using argv[0]: %v", err)
		exe = os.Args[0]
	}
	return []string{exe, config.MinimizedArg}
}

// DesktopCapabilities returns the capability set for this desktop build
func DesktopCapabilities() platform.Capabilities {
	return platform.Desktop(platform.DesktopOptions{
		AppName:     autostartName,
		DisplayName: version.AppName,
		Exec:        LoginCommand(),
	})
}
