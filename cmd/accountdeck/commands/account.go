package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"accountdeck/internal/domain"
	"accountdeck/internal/ui"
)

func loginCmd() *cobra.Command {
	var (
		mnemonic   string
		deviceName string
		userID     string
		backendURL string
		colorA     string
		colorB     string
		icon       string
	)
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Create the local account from a recovery phrase",
		Long: "Create the local account from a recovery phrase. The phrase is read " +
			"from stdin when --mnemonic is not given. Without --icon a random " +
			"profile is picked.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if mnemonic == "" {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read recovery phrase: %w", err)
				}
				mnemonic = strings.TrimSpace(line)
			}

			var profile domain.Profile
			if icon != "" || colorA != "" || colorB != "" {
				profile = domain.Profile{ColorA: colorA, ColorB: colorB, Icon: domain.Icon(icon)}
			}

			acc, err := appCtx.Account.Create(cmd.Context(), domain.CreateAccountParams{
				Passphrase: passphrase,
				Mnemonic:   mnemonic,
				DeviceName: deviceName,
				UserID:     userID,
				BackendURL: backendURL,
				Profile:    profile,
			})
			if err != nil {
				return err
			}

			view, _, err := appCtx.Resolver.Render(ui.UserAvatarOptions{WithName: true})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), view)
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", acc.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&mnemonic, "mnemonic", "", "recovery phrase (read from stdin when empty)")
	cmd.Flags().StringVar(&deviceName, "device", "", "name of this device")
	cmd.Flags().StringVar(&userID, "user-id", "", "user id issued by the backend")
	cmd.Flags().StringVar(&backendURL, "backend-url", "", "backend the account belongs to")
	cmd.Flags().StringVar(&colorA, "color-a", "", "first badge colour")
	cmd.Flags().StringVar(&colorB, "color-b", "", "second badge colour")
	cmd.Flags().StringVar(&icon, "icon", "", "badge icon ("+iconList()+")")
	_ = cmd.MarkFlagRequired("device")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and delete the stored account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Account.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

// whoami is the JSON shape printed by whoami --json.
type whoami struct {
	ID         domain.AccountID `json:"id"`
	UserID     string           `json:"userId,omitempty"`
	BackendURL string           `json:"backendUrl,omitempty"`
	DeviceName string           `json:"deviceName"`
	HasKey     bool             `json:"hasKey"`
	Profile    domain.Profile   `json:"profile"`
}

func whoamiCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in identity badge",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAccount(); err != nil {
				return err
			}
			id, _, err := appCtx.Resolver.Resolve()
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(whoami{
					ID:         id.Account.ID,
					UserID:     id.Account.UserID,
					BackendURL: id.Account.BackendURL,
					DeviceName: id.Name,
					HasKey:     id.HasKey,
					Profile:    id.Account.Profile,
				})
			}

			view, _, err := appCtx.Resolver.Render(ui.UserAvatarOptions{
				AvatarOptions: ui.AvatarOptions{Size: ui.SizeMedium},
				WithName:      true,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), view)
			fmt.Fprintf(cmd.OutOrStdout(), "Account: %s\n", id.Account.ID)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func iconList() string {
	names := make([]string, len(domain.Icons))
	for i, ic := range domain.Icons {
		names[i] = ic.String()
	}
	return strings.Join(names, ", ")
}
