package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"accountdeck/internal/domain"
	"accountdeck/internal/observability"
)

// DefaultTimeout bounds a single probe when the caller's context has no deadline.
const DefaultTimeout = 10 * time.Second

// HTTP probes backends and proxy workers over HTTP.
type HTTP struct {
	HTTP   *http.Client
	Logger *slog.Logger
}

// NewHTTP returns a client using hc, or http.DefaultClient when hc is nil.
func NewHTTP(hc *http.Client, logger *slog.Logger) *HTTP {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTP{HTTP: hc, Logger: observability.Component(logger, "backend")}
}

// Meta fetches the backend description from {baseURL}/meta.
func (c *HTTP) Meta(ctx context.Context, baseURL string) (domain.BackendMeta, error) {
	ctx, cancel := withDefaultTimeout(ctx)
	defer cancel()

	u := strings.TrimRight(baseURL, "/") + "/meta"
	resp, err := c.get(ctx, u)
	if err != nil {
		return domain.BackendMeta{}, err
	}
	defer resp.Body.Close()

	var out domain.BackendMeta
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.BackendMeta{}, fmt.Errorf("backend get %s: decode: %w", u, err)
	}
	if out.Version == "" && out.Name == "" {
		return domain.BackendMeta{}, fmt.Errorf("backend get %s: empty meta response", u)
	}
	return out, nil
}

// PingWorker checks that a proxy worker answers with a 2xx status.
func (c *HTTP) PingWorker(ctx context.Context, workerURL string) error {
	ctx, cancel := withDefaultTimeout(ctx)
	defer cancel()

	resp, err := c.get(ctx, workerURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// get issues a GET and turns non-2xx statuses into errors.
func (c *HTTP) get(ctx context.Context, u string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("probe",
		slog.String("url", u),
		slog.Int("status", resp.StatusCode),
		slog.Duration("took", time.Since(start)),
	)
	if resp.StatusCode/100 != 2 {
		resp.Body.Close()
		return nil, fmt.Errorf("backend get %s: %s", u, resp.Status)
	}
	return resp, nil
}

func withDefaultTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, DefaultTimeout)
}

// Compile-time assertion that HTTP implements domain.BackendClient.
var _ domain.BackendClient = (*HTTP)(nil)
