// internal/app/features/mentions/routes.go
package mentions

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter with the mention endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/queries", h.Queries)
	return r
}
