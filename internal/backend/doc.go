// Package backend provides an HTTP implementation of the domain.BackendClient
// interface used by accountdeck to check connection settings.
//
// Supported operations include:
//   - Fetching a custom backend's public description (GET {base}/meta).
//   - Pinging a proxy worker URL.
//
// All requests accept a context for cancellation and deadlines; a default
// timeout applies when the context has none. Non-2xx statuses are returned
// as errors with the full URL and status text to aid diagnostics.
package backend
