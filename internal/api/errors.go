package api

import (
	"errors"
	"net/http"

	"github.com/knightandthey/knightshade-email-service/internal/service"
	"github.com/knightandthey/knightshade-email-service/internal/store"
)

// HTTPError represents an HTTP error with a status code and a stable key
// that clients can match on instead of parsing message text.
type HTTPError struct {
	Code int    // HTTP status code
	Key  string // Stable error key (e.g. "not_found", "bad_request")
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrUnprocessableEntity = HTTPError{Code: http.StatusUnprocessableEntity, Key: "unprocessable_entity"}
	ErrBadGateway          = HTTPError{Code: http.StatusBadGateway, Key: "delivery_failed"}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
)

// httpErrorFor maps service and store errors onto transport errors.
func httpErrorFor(err error) HTTPError {
	switch {
	case errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, service.ErrRecipientUnsubscribed):
		return ErrBadRequest
	case errors.Is(err, service.ErrCodeExecutionDisabled):
		return ErrUnprocessableEntity
	case errors.Is(err, service.ErrTemplateNotFound),
		errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, service.ErrDelivery):
		return ErrBadGateway
	default:
		return ErrInternalServerError
	}
}
