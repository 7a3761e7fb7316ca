package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func checkCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Probe the configured workers and backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := appCtx.Settings.LoadSettings()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			out := cmd.OutOrStdout()
			failed := 0
			if s.ProxyURLs == nil {
				fmt.Fprintln(out, "workers: off")
			}
			for i, u := range s.ProxyURLs {
				if err := appCtx.Backend.PingWorker(ctx, u); err != nil {
					failed++
					fmt.Fprintf(out, "worker [%d] %s: FAIL %v\n", i, u, err)
					continue
				}
				fmt.Fprintf(out, "worker [%d] %s: ok\n", i, u)
			}

			if s.BackendURL == nil {
				fmt.Fprintln(out, "backend: off")
			} else {
				meta, err := appCtx.Backend.Meta(ctx, *s.BackendURL)
				if err != nil {
					failed++
					fmt.Fprintf(out, "backend %s: FAIL %v\n", *s.BackendURL, err)
				} else {
					fmt.Fprintf(out, "backend %s: ok (%s %s)\n", *s.BackendURL, meta.Name, meta.Version)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d connection check(s) failed", failed)
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "overall time limit")
	return cmd
}
