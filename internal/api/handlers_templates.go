package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/knightandthey/knightshade-email-service/internal/catalog"
	"github.com/knightandthey/knightshade-email-service/internal/service"
	"github.com/knightandthey/knightshade-email-service/internal/templates"
)

func (h *handlers) listTemplates(w http.ResponseWriter, r *http.Request) {
	tpls, err := h.templates.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, tpls)
}

func (h *handlers) createTemplate(w http.ResponseWriter, r *http.Request) {
	var in service.TemplateInput
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, err)
		return
	}
	tpl, err := h.templates.Create(r.Context(), in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusCreated, tpl)
}

func (h *handlers) getTemplate(w http.ResponseWriter, r *http.Request) {
	tpl, err := h.templates.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, tpl)
}

func (h *handlers) updateTemplate(w http.ResponseWriter, r *http.Request) {
	var in service.TemplateInput
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, err)
		return
	}
	tpl, err := h.templates.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, tpl)
}

func (h *handlers) deleteTemplate(w http.ResponseWriter, r *http.Request) {
	if err := h.templates.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// listBuiltin lists the fixed built-in templates.
func (h *handlers) listBuiltin(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, templates.List())
}

// listComponents exposes the component catalog the builder places from.
func (h *handlers) listComponents(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		respondData(w, http.StatusOK, catalog.ListCategory(category))
		return
	}
	respondData(w, http.StatusOK, catalog.List())
}
