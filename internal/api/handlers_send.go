package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/knightandthey/knightshade-email-service/internal/service"
	"github.com/knightandthey/knightshade-email-service/internal/store"
)

// sendBuiltinRequest sends via one of the built-in templates.
type sendBuiltinRequest struct {
	service.Envelope
	TemplateID string            `json:"templateId"`
	Variables  map[string]string `json:"variables,omitempty"`
}

func (h *handlers) sendBuiltin(w http.ResponseWriter, r *http.Request) {
	var req sendBuiltinRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	result, err := h.send.SendBuiltin(r.Context(), req.Envelope, req.TemplateID, req.Variables)
	if err != nil {
		// A delivery failure still produced a log record; surface both the
		// error and the failed result so clients can link to the log entry.
		if errors.Is(err, service.ErrDelivery) {
			respondJSON(w, ErrBadGateway.Code, JSONResponse{
				Data:  result,
				Error: &ErrorDetail{Code: ErrBadGateway.Key, Message: err.Error()},
			})
			return
		}
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, result)
}

// sendCustomRequest sends freeform content in one of the custom modes.
type sendCustomRequest struct {
	service.Envelope
	Mode      store.TemplateType `json:"mode"`
	Content   string             `json:"content"`
	Variables map[string]string  `json:"variables,omitempty"`
}

func (h *handlers) sendCustom(w http.ResponseWriter, r *http.Request) {
	var req sendCustomRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	result, err := h.send.SendCustom(r.Context(), req.Envelope, req.Mode, req.Content, req.Variables)
	if err != nil {
		if errors.Is(err, service.ErrDelivery) {
			respondJSON(w, ErrBadGateway.Code, JSONResponse{
				Data:  result,
				Error: &ErrorDetail{Code: ErrBadGateway.Key, Message: err.Error()},
			})
			return
		}
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, result)
}

func (h *handlers) listHistory(w http.ResponseWriter, r *http.Request) {
	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(w, errors.Join(service.ErrInvalidRequest, errors.New("limit must be an integer")))
			return
		}
		limit = parsed
	}

	logs, err := h.send.History(r.Context(), limit)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, logs)
}
