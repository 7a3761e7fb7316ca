package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"accountdeck/internal/domain"
	"accountdeck/internal/settings"
	"accountdeck/internal/ui"
)

// editSettings loads the settings, lets fn edit them through the settings
// editors and saves the result.
var errBackendOff = errors.New("custom server is off, run backend toggle")

func editSettings(fn func(s domain.Settings, proxy settings.ProxyEditor, backend settings.BackendEditor) error) (domain.Settings, error) {
	current, err := appCtx.Settings.LoadSettings()
	if err != nil {
		return domain.Settings{}, err
	}
	proxyState := settings.NewState(current.ProxyURLs)
	backendState := settings.NewState(current.BackendURL)

	err = fn(current, settings.NewProxyEditor(proxyState.Setter()), settings.NewBackendEditor(backendState.Setter()))
	if err != nil {
		return domain.Settings{}, err
	}

	next := domain.Settings{ProxyURLs: proxyState.Get(), BackendURL: backendState.Get()}
	if err := appCtx.Settings.SaveSettings(next); err != nil {
		return domain.Settings{}, err
	}
	return next, nil
}

func workerIndex(s domain.Settings, arg string) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("worker index %q: %w", arg, err)
	}
	if i < 0 || i >= len(s.ProxyURLs) {
		return 0, fmt.Errorf("no worker at index %d", i)
	}
	return i, nil
}

func printWorkers(cmd *cobra.Command, urls domain.ProxyURLs) {
	out := cmd.OutOrStdout()
	switch {
	case urls == nil:
		fmt.Fprintln(out, "Custom proxy workers: off")
	case len(urls) == 0:
		fmt.Fprintln(out, "Custom proxy workers: on (none configured)")
	default:
		fmt.Fprintln(out, "Custom proxy workers: on")
		for i, u := range urls {
			fmt.Fprintf(out, "  [%d] %s\n", i, u)
		}
	}
}

func printBackend(cmd *cobra.Command, url *string) {
	if url == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "Custom server: off")
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Custom server: on %q\n", *url)
}

func proxyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proxy",
		Short: "Edit the custom proxy worker list",
	}

	toggle := &cobra.Command{
		Use:   "toggle",
		Short: "Turn custom workers on or off (off drops the list)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := editSettings(func(_ domain.Settings, p settings.ProxyEditor, _ settings.BackendEditor) error {
				p.Toggle()
				return nil
			})
			if err != nil {
				return err
			}
			printWorkers(cmd, s.ProxyURLs)
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add [url]",
		Short: "Append a worker, empty unless url is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := editSettings(func(cur domain.Settings, p settings.ProxyEditor, _ settings.BackendEditor) error {
				p.Add()
				if len(args) == 1 {
					p.Change(len(cur.ProxyURLs), args[0])
				}
				return nil
			})
			if err != nil {
				return err
			}
			printWorkers(cmd, s.ProxyURLs)
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <index> <url>",
		Short: "Replace the worker at index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := editSettings(func(cur domain.Settings, p settings.ProxyEditor, _ settings.BackendEditor) error {
				i, err := workerIndex(cur, args[0])
				if err != nil {
					return err
				}
				p.Change(i, args[1])
				return nil
			})
			if err != nil {
				return err
			}
			printWorkers(cmd, s.ProxyURLs)
			return nil
		},
	}

	rm := &cobra.Command{
		Use:   "rm <index>",
		Short: "Remove the worker at index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := editSettings(func(cur domain.Settings, p settings.ProxyEditor, _ settings.BackendEditor) error {
				i, err := workerIndex(cur, args[0])
				if err != nil {
					return err
				}
				p.Remove(i)
				return nil
			})
			if err != nil {
				return err
			}
			printWorkers(cmd, s.ProxyURLs)
			return nil
		},
	}

	ls := &cobra.Command{
		Use:   "ls",
		Short: "List the configured workers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := appCtx.Settings.LoadSettings()
			if err != nil {
				return err
			}
			printWorkers(cmd, s.ProxyURLs)
			return nil
		},
	}

	cmd.AddCommand(toggle, add, set, rm, ls)
	return cmd
}

func backendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backend",
		Short: "Edit the custom backend URL",
	}

	toggle := &cobra.Command{
		Use:   "toggle",
		Short: "Turn the custom server on or off (off drops the URL)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := editSettings(func(_ domain.Settings, _ settings.ProxyEditor, b settings.BackendEditor) error {
				b.Toggle()
				return nil
			})
			if err != nil {
				return err
			}
			printBackend(cmd, s.BackendURL)
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <url>",
		Short: "Set the custom server URL, stored as typed (the server must be on)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := editSettings(func(cur domain.Settings, _ settings.ProxyEditor, b settings.BackendEditor) error {
				if cur.BackendURL == nil {
					return errBackendOff
				}
				b.Edit(args[0])
				return nil
			})
			if err != nil {
				return err
			}
			printBackend(cmd, s.BackendURL)
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the custom server setting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := appCtx.Settings.LoadSettings()
			if err != nil {
				return err
			}
			printBackend(cmd, s.BackendURL)
			return nil
		},
	}

	cmd.AddCommand(toggle, set, show)
	return cmd
}

func settingsPrint(cmd *cobra.Command, s domain.Settings) {
	fmt.Fprintln(cmd.OutOrStdout(), ui.ConnectionsPart(ui.ConnectionsProps{
		ProxyURLs:  s.ProxyURLs,
		BackendURL: s.BackendURL,
	}))
}
