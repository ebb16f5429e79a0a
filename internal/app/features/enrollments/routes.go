// internal/app/features/enrollments/routes.go
package enrollments

import (
	"github.com/go-chi/chi/v5"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/ratelimit"
)

// Routes returns the enrollment subrouter (mounted under /enrollments).
func Routes(h *Handler, limiter *ratelimit.Limiter) chi.Router {
	r := chi.NewRouter()
	r.With(ratelimit.Middleware(limiter)).Post("/", h.Create)
	r.Get("/{email}", h.ListForUser)
	return r
}
