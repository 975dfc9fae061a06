package cli

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newSettingsCmd(opts *rootOptions) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"config"},
		Short:   "Show or change user preferences",
	}
	settingsCmd.AddCommand(
		newSettingsGetCmd(opts),
		newSettingsSetCmd(opts),
		newSettingsExportCmd(opts),
		newSettingsImportCmd(opts),
	)
	return settingsCmd
}

func newSettingsGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the stored preferences as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withEnv(func(e *env) error {
				data, err := sonic.ConfigStd.MarshalIndent(e.prefs.GetSettings(), "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			})
		},
	}
}

// prefFlags are the flags of "settings set"; persistent flags such as --data
// do not count as a change.
var prefFlags = []string{"theme", "auto-launch", "minimize-to-tray", "global-shortcuts"}

func anyChanged(flags *pflag.FlagSet, names ...string) bool {
	for _, name := range names {
		if flags.Changed(name) {
			return true
		}
	}
	return false
}

func newSettingsSetCmd(opts *rootOptions) *cobra.Command {
	var (
		theme           string
		autoLaunch      bool
		minimizeToTray  bool
		globalShortcuts bool
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change one or more preferences",
		Long: `Change one or more preferences. Only the flags given are changed.
Changing --auto-launch also updates the login item.`,
		Example: `  shellctl settings set --theme dark
  shellctl settings set --auto-launch=false --minimize-to-tray`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !anyChanged(flags, prefFlags...) {
				return fmt.Errorf("nothing to change; see --help")
			}
			return opts.withEnv(func(e *env) error {
				pref := e.prefs.GetSettings()
				if flags.Changed("theme") {
					pref.Theme = theme
				}
				if flags.Changed("auto-launch") {
					pref.AutoLaunch = autoLaunch
				}
				if flags.Changed("minimize-to-tray") {
					pref.MinimizeToTray = minimizeToTray
				}
				if flags.Changed("global-shortcuts") {
					pref.GlobalShortcutsEnabled = globalShortcuts
				}
				if err := e.prefs.SetSettings(pref); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Settings saved.")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&theme, "theme", "", "UI theme (e.g. light, dark, system)")
	cmd.Flags().BoolVar(&autoLaunch, "auto-launch", false, "Start at login")
	cmd.Flags().BoolVar(&minimizeToTray, "minimize-to-tray", false, "Hide instead of quitting when the window is closed")
	cmd.Flags().BoolVar(&globalShortcuts, "global-shortcuts", false, "Enable global keyboard shortcuts")
	return cmd
}
