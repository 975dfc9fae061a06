package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/open-sunsama/shell/internal/config"
	"github.com/open-sunsama/shell/internal/domain"
	"github.com/open-sunsama/shell/internal/version"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default " + config.FileName + " into the data directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(config.Flags{DataDir: opts.dataDir}, os.Getenv)
			if err != nil {
				return err
			}
			path := filepath.Join(cfg.DataDir, config.FileName)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.SaveYAML(path, config.DefaultFile()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func newReconcileCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Bring the login item in line with the stored preference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withEnv(func(e *env) error {
				if err := e.prefs.Reconcile(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Auto-launch reconciled.")
				return nil
			})
		},
	}
}

func newNotifyCmd(opts *rootOptions) *cobra.Command {
	var title, body string
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Show a desktop notification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" {
				return fmt.Errorf("--title is required")
			}
			return opts.withEnv(func(e *env) error {
				notification := domain.NotificationOptions{Title: title}
				if body != "" {
					notification.Body = &body
				}
				return e.notifications.ShowNotification(notification)
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Notification title")
	cmd.Flags().StringVar(&body, "body", "", "Notification body")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "shellctl %s\n", version.Info())
			fmt.Fprintf(out, "  Built: %s\n", version.BuildTime)
			fmt.Fprintf(out, "  OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(out, "  Go: %s\n", runtime.Version())
		},
	}
}
