package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"accountdeck/internal/backend"
	"accountdeck/internal/domain"
	"accountdeck/internal/observability"
)

func TestDevBackend_ServesProbes(t *testing.T) {
	want := domain.BackendMeta{Name: "dev", Description: "d", Version: "1.0.0", HasCaptcha: true}
	srv := httptest.NewServer(accessLog(observability.Nop(), newMux(want)))
	defer srv.Close()

	c := backend.NewHTTP(srv.Client(), nil)
	got, err := c.Meta(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Meta: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if err := c.PingWorker(context.Background(), srv.URL+"/ping"); err != nil {
		t.Fatalf("PingWorker: %v", err)
	}
	if err := c.PingWorker(context.Background(), srv.URL+"/missing"); err == nil {
		t.Fatal("unknown path should fail the ping")
	}
}

func TestDevBackend_RejectsOtherMethods(t *testing.T) {
	rec := httptest.NewRecorder()
	newMux(domain.BackendMeta{Name: "dev"}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/meta", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("got %d, want 405", rec.Code)
	}
}
