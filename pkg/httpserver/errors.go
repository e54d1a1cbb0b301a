package httpserver

import "errors"

var (
	// ErrStart is returned when the listener could not be opened or the
	// serve loop exited with anything other than http.ErrServerClosed.
	ErrStart = errors.New("httpserver: start failed")

	// ErrShutdown is returned when in-flight requests did not drain
	// before the shutdown context expired.
	ErrShutdown = errors.New("httpserver: graceful shutdown failed")
)
