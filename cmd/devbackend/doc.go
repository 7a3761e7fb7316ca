// Package main runs a stand-in backend used by accountdeck during development
// and tests. It answers the two probes the check command makes.
//
// HTTP API
//
//	GET /meta
//	    Return {name, description, version, hasCaptcha} describing the server.
//
//	GET /ping
//	    Answer 200 with "ok". Point a proxy worker entry at it to simulate a
//	    healthy worker.
//
// Behaviour
//
//   - Responses are JSON except /ping. Other methods get 405.
//   - A lightweight access log records method, path, status and duration for
//     each request.
//   - The default listen address is :8080.
package main
