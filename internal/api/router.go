// Package api exposes the composer's JSON API over chi.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/knightandthey/knightshade-email-service/internal/service"
)

// Dependencies carries everything the router needs. All services are
// required; Health may be nil, in which case /health only reports liveness.
type Dependencies struct {
	Send        *service.SendService
	Preview     *service.PreviewService
	Templates   *service.TemplateService
	Transfer    *service.TransferService
	Unsubscribe *service.UnsubscribeService
	Health      http.HandlerFunc
	Logger      *slog.Logger
}

type handlers struct {
	send        *service.SendService
	preview     *service.PreviewService
	templates   *service.TemplateService
	transfer    *service.TransferService
	unsubscribe *service.UnsubscribeService
	log         *slog.Logger
}

// Router assembles the HTTP API.
func Router(deps Dependencies) chi.Router {
	h := &handlers{
		send:        deps.Send,
		preview:     deps.Preview,
		templates:   deps.Templates,
		transfer:    deps.Transfer,
		unsubscribe: deps.Unsubscribe,
		log:         deps.Logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	if deps.Health != nil {
		r.Get("/health", deps.Health)
	} else {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ALIVE"))
		})
	}

	r.Route("/api", func(api chi.Router) {
		api.Route("/templates", func(t chi.Router) {
			t.Get("/", h.listTemplates)
			t.Post("/", h.createTemplate)
			t.Get("/builtin", h.listBuiltin)
			t.Get("/export", h.exportTemplates)
			t.Post("/import", h.importTemplates)
			t.Get("/{id}", h.getTemplate)
			t.Put("/{id}", h.updateTemplate)
			t.Delete("/{id}", h.deleteTemplate)
		})

		api.Get("/components", h.listComponents)
		api.Post("/preview", h.previewEmail)
		api.Post("/send", h.sendBuiltin)
		api.Post("/send/custom", h.sendCustom)
		api.Get("/history", h.listHistory)
	})

	r.Get("/unsubscribe", h.unsubscribeGet)
	r.Post("/unsubscribe", h.unsubscribePost)

	return r
}
