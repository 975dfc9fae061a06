// Package cli implements the shellctl commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-sunsama/shell/internal/bootstrap"
	"github.com/open-sunsama/shell/internal/config"
	"github.com/open-sunsama/shell/internal/service"
)

// capabilities is replaced in tests
var capabilities = bootstrap.DesktopCapabilities

type env struct {
	settings      *bootstrap.Settings
	prefs         *service.PreferenceService
	notifications *service.NotificationService
	backup        *service.BackupService
}

func (e *env) Close() error {
	return e.settings.Close()
}

type rootOptions struct {
	dataDir string
}

func (o *rootOptions) open() (*env, error) {
	cfg, err := config.Resolve(config.Flags{DataDir: o.dataDir}, os.Getenv)
	if err != nil {
		return nil, err
	}
	if err := cfg.EnsureDataDir(); err != nil {
		return nil, err
	}
	settings, err := bootstrap.OpenSettings(cfg)
	if err != nil {
		return nil, err
	}
	caps := capabilities()
	return &env{
		settings:      settings,
		prefs:         service.NewPreferenceService(settings.Store, caps.AutoLaunch),
		notifications: service.NewNotificationService(caps),
		backup:        service.NewBackupService(settings.Repo),
	}, nil
}

// withEnv opens the settings stack for the duration of fn
func (o *rootOptions) withEnv(fn func(e *env) error) error {
	e, err := o.open()
	if err != nil {
		return err
	}
	defer e.Close()
	return fn(e)
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "shellctl",
		Short: "Inspect and change Open Sunsama desktop settings",
		Long: `shellctl reads and writes the desktop shell's settings database and
manages the login item without starting the app. A running app picks up
changes through its settings watcher.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.dataDir, "data", "",
		fmt.Sprintf("Data directory (default: $%s or %s)", config.EnvDataDir, config.DefaultDataDir()))

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(newAutoLaunchCmd(opts))
	rootCmd.AddCommand(newInitCmd(opts))
	rootCmd.AddCommand(newNotifyCmd(opts))
	rootCmd.AddCommand(newReconcileCmd(opts))
	rootCmd.AddCommand(newSettingsCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}
