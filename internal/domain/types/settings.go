package types

// ProxyURLs is the optional list of custom proxy workers.
//
// A nil slice means the feature is disabled; an empty non-nil slice means it
// is enabled with no workers yet.
type ProxyURLs []string

// Enabled reports whether custom proxy workers are switched on.
func (p ProxyURLs) Enabled() bool { return p != nil }

// Settings holds the connection preferences edited by the panel.
// A nil BackendURL means the custom backend is disabled.
type Settings struct {
	ProxyURLs  ProxyURLs
	BackendURL *string
}
