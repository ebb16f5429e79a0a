// internal/app/features/courses/list.go
package courses

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	coursestore "github.com/mahirsiam2004/altrion-server/internal/app/store/courses"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/htmlsanitize"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/normalize"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/reqlog"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/respond"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// List serves GET /courses?category=&search=&featured=true. The category
// is cleaned the same way it is on write so stored values match.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := coursestore.Filter{
		Category: normalize.Category(htmlsanitize.Text(q.Get("category"))),
		Search:   normalize.QueryParam(q.Get("search")),
		Featured: normalize.Flag(q.Get("featured")),
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list courses")
	defer cancel()

	courses, err := h.Courses.List(ctx, f)
	if err != nil {
		reqlog.Logger(r.Context(), h.Log).Error("list courses failed",
			zap.String("category", f.Category),
			zap.String("search", f.Search),
			zap.Bool("featured", f.Featured),
			zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch courses")
		return
	}
	respond.OK(w, courses)
}

// Featured serves GET /courses/featured.
func (h *Handler) Featured(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "featured courses")
	defer cancel()

	courses, err := h.Courses.ListFeatured(ctx)
	if err != nil {
		reqlog.Logger(r.Context(), h.Log).Error("list featured courses failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch featured courses")
		return
	}
	respond.OK(w, courses)
}

// ByInstructor serves GET /courses/instructor/{email}.
func (h *Handler) ByInstructor(w http.ResponseWriter, r *http.Request) {
	email := normalize.Email(chi.URLParam(r, "email"))

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "instructor courses")
	defer cancel()

	courses, err := h.Courses.ListByInstructor(ctx, email)
	if err != nil {
		reqlog.Logger(r.Context(), h.Log).Error("list instructor courses failed",
			zap.String("email", email), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch instructor courses")
		return
	}
	respond.OK(w, courses)
}
