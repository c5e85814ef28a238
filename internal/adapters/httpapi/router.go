// Package httpapi exposes the calendar, enrollment and roster use cases
// over a chi router.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts every route of the API on a chi router.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)

	r.Get("/health", HealthCheck)

	r.Route("/events", func(r chi.Router) {
		r.Get("/rolling", h.RollingEvents)
		r.Get("/week/{offset}", h.WeekEvents)
		r.Get("/{id}", h.Event)
		r.Get("/{id}/roster", h.Roster)
	})
	r.Post("/generate-weekly-events", h.GenerateEvents)

	r.Post("/signup", h.Signup)
	r.Post("/signup/{id}/cancel", h.Cancel)
	r.Get("/user-signups/{email}", h.UserSignups)

	r.Get("/users", h.ListUsers)
	r.Post("/users", h.CreateUser)

	return r
}
