// internal/app/features/enrollments/list.go
package enrollments

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/normalize"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/reqlog"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/respond"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ListForUser serves GET /enrollments/{email}: the courses the user is
// enrolled in. Enrollments whose course no longer exists are skipped.
func (h *Handler) ListForUser(w http.ResponseWriter, r *http.Request) {
	email := normalize.Email(chi.URLParam(r, "email"))

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "enrolled courses")
	defer cancel()

	ids, err := h.Enrollments.CourseIDsByUser(ctx, email)
	if err != nil {
		reqlog.Logger(r.Context(), h.Log).Error("list enrollments failed",
			zap.String("user_email", email), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch enrolled courses")
		return
	}
	courses, err := h.Courses.GetByIDs(ctx, ids)
	if err != nil {
		reqlog.Logger(r.Context(), h.Log).Error("load enrolled courses failed",
			zap.String("user_email", email), zap.Int("course_ids", len(ids)), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch enrolled courses")
		return
	}
	respond.OK(w, courses)
}
