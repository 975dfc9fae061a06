package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAutoLaunchCmd(opts *rootOptions) *cobra.Command {
	autoLaunchCmd := &cobra.Command{
		Use:   "autolaunch",
		Short: "Manage the login item",
	}

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Show whether the app is registered to start at login",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withEnv(func(e *env) error {
				enabled, err := e.prefs.GetAutoLaunch()
				if err != nil {
					return err
				}
				stored := e.prefs.GetSettings().AutoLaunch
				fmt.Fprintf(cmd.OutOrStdout(), "registered: %v\npreference: %v\n", enabled, stored)
				return nil
			})
		},
	}

	setCmd := func(use, short string, enabled bool) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.withEnv(func(e *env) error {
					if err := e.prefs.SetAutoLaunch(enabled); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Auto-launch %sd.\n", use)
					return nil
				})
			},
		}
	}

	autoLaunchCmd.AddCommand(
		getCmd,
		setCmd("enable", "Start at login", true),
		setCmd("disable", "Stop starting at login", false),
	)
	return autoLaunchCmd
}
