package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"accountdeck/internal/domain"
	"accountdeck/internal/ui"
)

func parseSize(s string) (ui.Size, error) {
	switch s {
	case "", "small":
		return ui.SizeSmall, nil
	case "medium":
		return ui.SizeMedium, nil
	case "large":
		return ui.SizeLarge, nil
	}
	return 0, fmt.Errorf("unknown size %q (small, medium, large)", s)
}

func avatarCmd() *cobra.Command {
	var (
		colorA   string
		colorB   string
		icon     string
		size     string
		bottom   string
		withName bool
	)
	cmd := &cobra.Command{
		Use:   "avatar",
		Short: "Preview a profile badge",
		Long: "Draw a badge for the given colours and icon. Without --icon the " +
			"signed-in user's badge is drawn, or the placeholder when signed out.",
		RunE: func(cmd *cobra.Command, args []string) error {
			sz, err := parseSize(size)
			if err != nil {
				return err
			}
			opts := ui.AvatarOptions{Size: sz, Bottom: bottom}
			out := cmd.OutOrStdout()

			if icon != "" {
				p := domain.Profile{ColorA: colorA, ColorB: colorB, Icon: domain.Icon(icon)}
				if err := p.Validate(); err != nil {
					return err
				}
				fmt.Fprintln(out, ui.Avatar(p, opts))
				return nil
			}

			trySignIn()
			view, ok, err := appCtx.Resolver.Render(ui.UserAvatarOptions{AvatarOptions: opts, WithName: withName})
			if err != nil {
				return err
			}
			if !ok {
				view = ui.NoUserAvatar(opts)
			}
			fmt.Fprintln(out, view)
			return nil
		},
	}
	cmd.Flags().StringVar(&colorA, "color-a", "#2E65CF", "first gradient colour")
	cmd.Flags().StringVar(&colorB, "color-b", "#CF2E2E", "second gradient colour")
	cmd.Flags().StringVar(&icon, "icon", "", "badge icon ("+iconList()+")")
	cmd.Flags().StringVar(&size, "size", "small", "badge size (small, medium, large)")
	cmd.Flags().StringVar(&bottom, "bottom", "", "label laid over the bottom edge")
	cmd.Flags().BoolVar(&withName, "name", false, "draw the device name beside the signed-in badge")
	return cmd
}
