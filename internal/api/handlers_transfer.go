package api

import (
	"net/http"

	"github.com/knightandthey/knightshade-email-service/internal/service"
)

func (h *handlers) exportTemplates(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.transfer.Export(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, bundle)
}

// importRequest wraps an export bundle with import options.
type importRequest struct {
	service.ExportBundle
	Overwrite      bool `json:"overwrite,omitempty"`
	GenerateNewIDs bool `json:"generateNewIds,omitempty"`
}

func (h *handlers) importTemplates(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	report, err := h.transfer.Import(r.Context(), req.ExportBundle, service.ImportOptions{
		Overwrite:      req.Overwrite,
		GenerateNewIDs: req.GenerateNewIDs,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, report)
}
