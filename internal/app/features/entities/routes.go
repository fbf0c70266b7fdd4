// internal/app/features/entities/routes.go
package entities

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter with the entity extraction endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	return r
}
