package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"accountdeck/internal/domain"
	"accountdeck/internal/observability"
)

// statusRecorder captures the status code for the access log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func accessLog(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("took", time.Since(start)),
		)
	})
}

func newMux(meta domain.BackendMeta) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/meta", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(meta)
	})
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

func main() {
	var (
		addr string
		meta domain.BackendMeta
	)
	root := &cobra.Command{
		Use:          "devbackend",
		Short:        "Local stand-in backend for accountdeck",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := observability.NewLogger(os.Stderr, true)
			logger.Info("listening", slog.String("addr", addr))
			srv := &http.Server{
				Addr:              addr,
				Handler:           accessLog(logger, newMux(meta)),
				ReadHeaderTimeout: 5 * time.Second,
			}
			return srv.ListenAndServe()
		},
	}
	root.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	root.Flags().StringVar(&meta.Name, "name", "devbackend", "server name reported by /meta")
	root.Flags().StringVar(&meta.Description, "description", "Local development backend", "server description")
	root.Flags().StringVar(&meta.Version, "version", "0.0.0-dev", "server version")
	root.Flags().BoolVar(&meta.HasCaptcha, "captcha", false, "report that the server requires a captcha")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
