package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"accountdeck/internal/tui"
)

func settingsCmd() *cobra.Command {
	var printOnly bool
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Open the interactive connections panel",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := appCtx.Settings.LoadSettings()
			if err != nil {
				return err
			}
			if printOnly {
				settingsPrint(cmd, s)
				return nil
			}

			trySignIn()
			m, err := tui.Run(tui.Options{
				Settings: s,
				Store:    appCtx.Settings,
				Auth:     appCtx.Auth,
				Resolver: appCtx.Resolver,
				Logger:   appCtx.Logger,
			})
			if err != nil {
				return err
			}
			if m.Dirty() {
				fmt.Fprintln(cmd.OutOrStdout(), "Quit without saving")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&printOnly, "print", false, "draw the panel once and exit")
	return cmd
}
