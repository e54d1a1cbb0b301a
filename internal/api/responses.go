package api

import (
	"encoding/json"
	"net/http"
)

// JSONResponse is the standard response envelope.
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail carries error information inside the envelope.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, body JSONResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// respondData writes a success envelope.
func respondData(w http.ResponseWriter, status int, data any) {
	respondJSON(w, status, JSONResponse{Data: data})
}

// respondError maps the error to a transport error and writes an error
// envelope. The original error message is surfaced for client errors;
// internal errors only expose the stable key.
func respondError(w http.ResponseWriter, err error) {
	httpErr := httpErrorFor(err)
	detail := &ErrorDetail{Code: httpErr.Key}
	if httpErr.Code < http.StatusInternalServerError || httpErr == ErrBadGateway {
		detail.Message = err.Error()
	}
	respondJSON(w, httpErr.Code, JSONResponse{Error: detail})
}
