// Package api exposes the mock skincare backend over HTTP.
//
// Separation of Concerns
//
// The api package defines public JSON types (decoupled from core and
// responder), maps domain values to JSON, and hosts a gin engine inside an
// http.Server with a short middleware chain. The core package remains unaware
// of HTTP or JSON.
//
// Server
//
// NewServer wires handlers onto a gin engine and configures timeouts. Start()
// runs ListenAndServe() in a goroutine; Stop() performs graceful shutdown.
// Middleware assigns a request id, logs method/path/status/duration, recovers
// panics and answers CORS for any origin.
//
// Error Model
//
// APIError uses a string message and a timestamp in RFC3339. Only the router
// produces errors (404 unknown route, 405 wrong method). Domain handlers never
// reject input: an unreadable chat body is treated as an empty message.
//
// Current Endpoints
//
// - POST /api/analyze:           fixed diagnosis, body ignored
// - POST /api/analyze-skin-care: fixed skin profile, body ignored
// - GET  /api/history:           progress history in insertion order
// - GET  /api/stats:             fixed symptom distribution
// - POST /api/progress:          records the next weekly entry
// - POST /api/chat:              keyword-matched canned reply
// - GET  /healthz:               basic liveness/readiness
package api
