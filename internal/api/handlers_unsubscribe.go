package api

import (
	"net/http"

	"github.com/knightandthey/knightshade-email-service/internal/markup"
)

// unsubscribeGet handles one-click unsubscribe links embedded in emails.
// It records the opt-out and renders a small confirmation page.
func (h *handlers) unsubscribeGet(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	source := r.URL.Query().Get("source")

	if err := h.unsubscribe.Record(r.Context(), email, source); err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"/><title>Unsubscribed</title></head>
<body style="font-family: Arial, Helvetica, sans-serif; max-width: 480px; margin: 64px auto; text-align: center;">
<h1 style="font-size: 24px;">You're unsubscribed</h1>
<p>` + markup.Escape(email) + ` will no longer receive these emails.</p>
</body>
</html>`))
}

type unsubscribeRequest struct {
	Email  string `json:"email"`
	Source string `json:"source,omitempty"`
}

func (h *handlers) unsubscribePost(w http.ResponseWriter, r *http.Request) {
	var req unsubscribeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if err := h.unsubscribe.Record(r.Context(), req.Email, req.Source); err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, map[string]string{"status": "unsubscribed"})
}
