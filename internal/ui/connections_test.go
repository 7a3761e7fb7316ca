package ui_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"accountdeck/internal/domain"
	"accountdeck/internal/ui"
)

func strPtr(s string) *string { return &s }

func TestFields(t *testing.T) {
	tests := []struct {
		name    string
		proxy   domain.ProxyURLs
		backend *string
		want    []ui.Field
	}{
		{
			name: "all disabled",
			want: []ui.Field{{Kind: ui.FieldProxyToggle}, {Kind: ui.FieldBackendToggle}},
		},
		{
			name:  "empty proxy list",
			proxy: domain.ProxyURLs{},
			want: []ui.Field{
				{Kind: ui.FieldProxyToggle},
				{Kind: ui.FieldProxyAdd},
				{Kind: ui.FieldBackendToggle},
			},
		},
		{
			name:    "everything enabled",
			proxy:   domain.ProxyURLs{"https://a", "https://b"},
			backend: strPtr(""),
			want: []ui.Field{
				{Kind: ui.FieldProxyToggle},
				{Kind: ui.FieldProxyItem, Index: 0},
				{Kind: ui.FieldProxyItem, Index: 1},
				{Kind: ui.FieldProxyAdd},
				{Kind: ui.FieldBackendToggle},
				{Kind: ui.FieldBackendURL},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ui.Fields(tt.proxy, tt.backend); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestConnectionsPart_Disabled(t *testing.T) {
	out := ansi.Strip(ui.ConnectionsPart(ui.ConnectionsProps{}))
	heading := strings.Index(out, "Connections")
	proxy := strings.Index(out, "Use custom proxy workers")
	backend := strings.Index(out, "Custom server")
	if heading < 0 || proxy < 0 || backend < 0 {
		t.Fatalf("missing section:\n%s", out)
	}
	if !(heading < proxy && proxy < backend) {
		t.Fatalf("sections out of order:\n%s", out)
	}
	for _, hidden := range []string{"Worker URLs", "Custom server URL", "Add new worker"} {
		if strings.Contains(out, hidden) {
			t.Errorf("%q shown while disabled", hidden)
		}
	}
	if strings.Count(out, "○ off") != 2 {
		t.Errorf("want two off toggles:\n%s", out)
	}
}

func TestConnectionsPart_EmptyWorkerList(t *testing.T) {
	out := ansi.Strip(ui.ConnectionsPart(ui.ConnectionsProps{ProxyURLs: domain.ProxyURLs{}}))
	for _, want := range []string{"Worker URLs", "No workers yet, add one below", "Add new worker", "● on"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q:\n%s", want, out)
		}
	}
}

func TestConnectionsPart_WorkersInOrder(t *testing.T) {
	out := ansi.Strip(ui.ConnectionsPart(ui.ConnectionsProps{
		ProxyURLs:  domain.ProxyURLs{"https://one.example", "https://two.example"},
		BackendURL: strPtr("https://api.example"),
		Focus:      ui.Field{Kind: ui.FieldProxyItem, Index: 1},
	}))
	if strings.Contains(out, "No workers yet") {
		t.Fatal("empty message shown with workers present")
	}
	one, two := strings.Index(out, "https://one.example"), strings.Index(out, "https://two.example")
	if one < 0 || two < 0 || one > two {
		t.Fatalf("workers missing or out of order:\n%s", out)
	}
	if !strings.Contains(out, "> https://two.example") {
		t.Fatalf("focused worker not marked:\n%s", out)
	}
	if !strings.Contains(out, "Custom server URL") || !strings.Contains(out, "https://api.example") {
		t.Fatalf("backend url missing:\n%s", out)
	}
	if strings.Count(out, "✕") != 2 {
		t.Fatalf("want a remove control per worker:\n%s", out)
	}
}

func TestConnectionsPart_LiveInputReplacesFocusedValue(t *testing.T) {
	out := ansi.Strip(ui.ConnectionsPart(ui.ConnectionsProps{
		BackendURL: strPtr("https://old.example"),
		Focus:      ui.Field{Kind: ui.FieldBackendURL},
		Input:      "https://typing.example",
	}))
	if strings.Contains(out, "https://old.example") || !strings.Contains(out, "https://typing.example") {
		t.Fatalf("live input not drawn:\n%s", out)
	}
}

func TestConnectionsPart_NarrowWidth(t *testing.T) {
	backend := strPtr("https://api.example")
	for width := 1; width <= 5; width++ {
		props := ui.ConnectionsProps{
			ProxyURLs:  domain.ProxyURLs{"https://w1.example"},
			BackendURL: backend,
			Focus:      ui.Field{Kind: ui.FieldProxyItem},
			Width:      width,
		}
		out := ansi.Strip(ui.ConnectionsPart(props))
		if !strings.Contains(out, "Worker URLs") || !strings.Contains(out, "Custom server URL") {
			t.Fatalf("width %d: cards missing:\n%s", width, out)
		}
	}

	out := ansi.Strip(ui.ConnectionsPart(ui.ConnectionsProps{ProxyURLs: domain.ProxyURLs{}, Width: 4}))
	if !strings.Contains(out, "Add new worker") {
		t.Fatalf("empty list at width 4:\n%s", out)
	}
}
