// internal/app/features/courses/routes.go
package courses

import (
	"github.com/go-chi/chi/v5"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/ratelimit"
)

// Routes returns the course subrouter (mounted under /courses). Writes go
// through limiter; nil means unlimited.
func Routes(h *Handler, limiter *ratelimit.Limiter) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/featured", h.Featured)
	r.Get("/instructor/{email}", h.ByInstructor)
	r.Get("/{id}", h.Get)

	w := r.With(ratelimit.Middleware(limiter))
	w.Post("/", h.Create)
	w.Put("/{id}", h.Update)
	w.Delete("/{id}", h.Delete)
	return r
}
