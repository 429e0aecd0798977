package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handlers groups everything the router mounts
type Handlers struct {
	Directory      *DirectoryHandler
	Admin          *AdminHandler
	Health         *HealthHandler
	AllowedOrigins []string
}

// NewRouter registers the middleware chain and every route
func NewRouter(h Handlers, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RecoveryMiddleware(logger))
	r.Use(LoggingMiddleware(logger))
	r.Use(CORSMiddleware(h.AllowedOrigins))

	r.Get("/health", h.Health.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/directory", func(r chi.Router) {
			r.Get("/", h.Directory.Directory)
			r.Get("/locations", h.Directory.Locations)
			r.Get("/profiles/{id}", h.Directory.Profile)
		})

		r.Get("/map", h.Directory.Map)

		r.Route("/admin/profiles", func(r chi.Router) {
			r.Get("/", h.Admin.ListProfiles)
			r.Post("/", h.Admin.CreateProfile)
			r.Patch("/{id}", h.Admin.UpdateProfile)
			r.Delete("/{id}", h.Admin.DeleteProfile)
		})
	})

	return r
}
