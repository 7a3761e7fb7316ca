package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"accountdeck/internal/app"
	"accountdeck/internal/observability"
	"accountdeck/internal/store"
)

var (
	home       string
	passphrase string
	verbose    bool
	appCtx     *app.Wire
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "accountdeck",
		Short:        "Account badge and connection settings",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := app.DefaultHome()
				if err != nil {
					return err
				}
				home = dir
			}

			logger := observability.NewLogger(cmd.ErrOrStderr(), verbose)
			w, err := app.NewWire(app.Config{Home: home, Logger: logger})
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.accountdeck)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the stored account")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(
		loginCmd(),
		logoutCmd(),
		whoamiCmd(),
		avatarCmd(),
		proxyCmd(),
		backendCmd(),
		checkCmd(),
		settingsCmd(),
	)
	return root
}

// requireAccount restores the stored account and fails when there is none.
func requireAccount() error {
	ok, err := appCtx.SignIn(passphrase)
	if errors.Is(err, store.ErrPassphraseRequired) {
		return fmt.Errorf("passphrase required (-p)")
	}
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("not signed in. use login")
	}
	return nil
}

// trySignIn restores the stored account if it can, and stays signed out
// otherwise.
func trySignIn() {
	if _, err := appCtx.SignIn(passphrase); err != nil {
		appCtx.Logger.Warn("continuing signed out", slog.Any("err", err))
	}
}
