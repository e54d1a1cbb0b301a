// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, lifecycle hooks, and health-check handlers.
//
// Construction goes through New or NewFromConfig with Option helpers such as
// WithAddr, WithReadTimeout and WithLogger. Run blocks until the context is
// cancelled or an interrupt/TERM signal arrives, then shuts the server down
// with a configurable deadline. WithStartHook and WithStopHook run
// side-effects around the server lifecycle. Public errors are wrapped with
// the ErrStart and ErrShutdown sentinels so callers can use errors.Is.
//
// HealthCheckHandler returns an http.HandlerFunc usable for both liveness
// and readiness probes; readiness runs the supplied dependency checks.
package httpserver
