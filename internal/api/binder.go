package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/knightandthey/knightshade-email-service/internal/service"
)

var (
	errMissingContentType   = errors.New("missing content type")
	errUnsupportedMediaType = errors.New("unsupported media type")
	errInvalidJSON          = errors.New("invalid JSON")
)

// decodeJSON binds a JSON request body into v. Content type must be
// application/json and the entire body must be consumed. Binding failures
// are reported as validation errors so they surface as 400 responses.
func decodeJSON(r *http.Request, v any) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: %v: expected application/json", service.ErrInvalidRequest, errMissingContentType)
	}

	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(contentType[:idx])
	}
	if mediaType != "application/json" {
		return fmt.Errorf("%w: %v: got %s, expected application/json", service.ErrInvalidRequest, errUnsupportedMediaType, mediaType)
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		if err == io.EOF {
			return fmt.Errorf("%w: %v: empty body", service.ErrInvalidRequest, errInvalidJSON)
		}
		return fmt.Errorf("%w: %v: %v", service.ErrInvalidRequest, errInvalidJSON, err)
	}

	// Ensure the entire body was consumed.
	var extra json.RawMessage
	if err := decoder.Decode(&extra); err != io.EOF {
		return fmt.Errorf("%w: %v: unexpected data after JSON object", service.ErrInvalidRequest, errInvalidJSON)
	}

	return nil
}
