// internal/app/features/overview/routes.go
package overview

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter with the dashboard stats endpoint.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve)
	return r
}
