package api

import (
	"fmt"
	"net/http"

	"github.com/knightandthey/knightshade-email-service/internal/render"
	"github.com/knightandthey/knightshade-email-service/internal/service"
	"github.com/knightandthey/knightshade-email-service/internal/store"
)

// previewRequest accepts any one of three payload shapes: builder canvas
// elements, a built-in template id, or freeform content with a mode.
type previewRequest struct {
	Elements   []render.Element   `json:"elements,omitempty"`
	TemplateID string             `json:"templateId,omitempty"`
	Mode       store.TemplateType `json:"mode,omitempty"`
	Content    string             `json:"content,omitempty"`
	Variables  map[string]string  `json:"variables,omitempty"`
}

type previewResponse struct {
	HTML string `json:"html"`
}

func (h *handlers) previewEmail(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	var (
		html string
		err  error
	)
	switch {
	case len(req.Elements) > 0:
		html = h.preview.PreviewElements(req.Elements)
	case req.TemplateID != "":
		html, err = h.preview.PreviewBuiltin(req.TemplateID, req.Variables)
	case req.Content != "":
		html, err = h.preview.PreviewCustom(req.Mode, req.Content, req.Variables)
	default:
		err = fmt.Errorf("%w: one of elements, templateId or content is required", service.ErrInvalidRequest)
	}
	if err != nil {
		respondError(w, err)
		return
	}

	respondData(w, http.StatusOK, previewResponse{HTML: html})
}
