package mongo

import "errors"

var (
	// ErrFailedToConnectToMongo is returned when every connection attempt
	// within the configured retry count has failed. Callers treat the
	// template store as unavailable and should refuse to start.
	ErrFailedToConnectToMongo = errors.New("mongo: all connection attempts failed")

	// ErrHealthcheckFailed wraps ping failures surfaced by readiness probes.
	ErrHealthcheckFailed = errors.New("mongo: healthcheck ping failed")
)
