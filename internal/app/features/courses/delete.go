// internal/app/features/courses/delete.go
package courses

import (
	"net/http"

	"github.com/mahirsiam2004/altrion-server/internal/app/system/reqlog"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/respond"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Delete serves DELETE /courses/{id}. Enrollments that point at the course
// are kept; the enrolled-courses listing skips ids that no longer resolve.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := courseID(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "delete course")
	defer cancel()

	n, err := h.Courses.Delete(ctx, id)
	if err != nil {
		reqlog.Logger(r.Context(), h.Log).Error("delete course failed",
			zap.String("course_id", id.Hex()), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to delete course")
		return
	}
	if n == 0 {
		respond.Error(w, http.StatusNotFound, msgNotFound)
		return
	}
	reqlog.Logger(r.Context(), h.Log).Info("course deleted", zap.String("course_id", id.Hex()))
	respond.OK(w, respond.Delete{Acknowledged: true, DeletedCount: n})
}
