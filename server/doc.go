// Package server provides the HTTP surface of the API: a Gin engine inside a
// net/http server with h2c, the standard middleware pipeline, the route
// handlers, and the response envelopes.
//
// # Middleware
//
// The standard pipeline (server/middleware), in order:
//
//   - Trace: per-request trace-ID assignment and X-Trace-ID response header
//   - Recovery: panic recovery with structured logging
//   - RequestLogger: request logging with duration tracking
//   - CORS: cross-origin resource sharing for configured origins
//   - RateLimit: per-client sliding-window rate limiting
//   - Gate: bearer-token authentication with a configurable exclusion list
//
// # Routes
//
// Registered under the API prefix (default /api/v1):
//
//   - POST /token: password login, returns a bearer token
//   - POST /register: user registration, returns a bearer token
//   - GET /: authenticated connectivity check
//   - GET /error/force: deliberate failure exercising the 500 path
package server
