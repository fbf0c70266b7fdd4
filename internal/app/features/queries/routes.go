// internal/app/features/queries/routes.go
package queries

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter with the query endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Delete("/{id}", h.Delete)
	return r
}
