// internal/app/features/tracking/routes.go
package tracking

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter with the tracking endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/queries", h.Queries)
	return r
}
