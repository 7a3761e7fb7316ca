package backend_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"accountdeck/internal/backend"
)

func TestMeta_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/meta" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Home backend","version":"1.3.0","hasCaptcha":true}`))
	}))
	defer srv.Close()

	c := backend.NewHTTP(srv.Client(), nil)
	meta, err := c.Meta(context.Background(), srv.URL+"/")
	if err != nil {
		t.Fatalf("Meta: %v", err)
	}
	if meta.Name != "Home backend" || meta.Version != "1.3.0" || !meta.HasCaptcha {
		t.Fatalf("unexpected meta: %+v", meta)
	}
}

func TestMeta_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := backend.NewHTTP(srv.Client(), nil).Meta(context.Background(), srv.URL)
	if err == nil || !strings.Contains(err.Error(), "503") || !strings.Contains(err.Error(), "/meta") {
		t.Fatalf("want status error naming the URL, got %v", err)
	}
}

func TestMeta_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	if _, err := backend.NewHTTP(srv.Client(), nil).Meta(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for empty meta")
	}
}

func TestPingWorker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/broken" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := backend.NewHTTP(srv.Client(), nil)
	if err := c.PingWorker(context.Background(), srv.URL); err != nil {
		t.Fatalf("PingWorker: %v", err)
	}
	if err := c.PingWorker(context.Background(), srv.URL+"/broken"); err == nil {
		t.Fatal("expected error for 502")
	}
	if err := c.PingWorker(context.Background(), "://not a url"); err == nil {
		t.Fatal("expected error for malformed URL")
	}
}
