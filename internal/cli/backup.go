package cli

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/open-sunsama/shell/internal/domain"
)

func newSettingsExportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write every stored setting to a backup file (stdout when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withEnv(func(e *env) error {
				backup, err := e.backup.Export()
				if err != nil {
					return err
				}
				data, err := sonic.ConfigStd.MarshalIndent(backup, "", "  ")
				if err != nil {
					return err
				}
				if len(args) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), string(data))
					return nil
				}
				if err := os.WriteFile(args[0], append(data, '\n'), 0o600); err != nil {
					return fmt.Errorf("write backup: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d settings to %s\n", len(backup.Settings), args[0])
				return nil
			})
		},
	}
}

func newSettingsImportCmd(opts *rootOptions) *cobra.Command {
	var (
		conflict string
		dryRun   bool
	)
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Restore settings from a backup file",
		Long: `Restore settings from a file written by "settings export".
Keys that already hold a different value are handled by --conflict:
skip keeps the current value, overwrite replaces it, error aborts
without writing anything.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := domain.ParseConflictStrategy(conflict)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read backup: %w", err)
			}
			var backup domain.BackupFile
			if err := sonic.Unmarshal(data, &backup); err != nil {
				return fmt.Errorf("parse backup: %w", err)
			}
			return opts.withEnv(func(e *env) error {
				result, err := e.backup.Import(&backup, domain.ImportOptions{Conflict: strategy, DryRun: dryRun})
				if err != nil {
					return err
				}
				prefix := ""
				if dryRun {
					prefix = "[dry run] "
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%simported %d, updated %d, skipped %d\n",
					prefix, result.Imported, result.Updated, result.Skipped)
				if dryRun {
					return nil
				}
				// imported auto_launch must reach the login item
				return e.prefs.Reconcile()
			})
		},
	}
	cmd.Flags().StringVar(&conflict, "conflict", string(domain.ConflictSkip), "Conflict strategy: skip, overwrite or error")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would change without writing")
	return cmd
}
