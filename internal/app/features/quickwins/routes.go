// internal/app/features/quickwins/routes.go
package quickwins

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter with the quick-win endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Patch("/", h.Transition)
	return r
}
