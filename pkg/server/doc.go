// Package server exposes the render pipeline over HTTP.
//
// Routes:
//
//	POST /render?format=svg|png|json[&width=W&height=H]
//	GET  /healthz
//	GET  /version
//
// The request body of /render is a chart definition, TOML unless the
// Content-Type says application/json. Responses carry X-Request-ID and,
// for renders, X-Cache (hit or miss) and X-Chart-Hash. Errors are JSON
// objects with the message and error code; validation errors map to 400.
package server
