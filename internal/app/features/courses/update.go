// internal/app/features/courses/update.go
package courses

import (
	"net/http"

	"github.com/mahirsiam2004/altrion-server/internal/app/system/inputval"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/limits"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/reqlog"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/respond"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Update serves PUT /courses/{id}. Only the fields present in the body are
// changed.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := courseID(w, r)
	if !ok {
		return
	}

	var in updateInput
	if !respond.DecodeJSON(w, r, limits.MaxCourseBody, &in) {
		return
	}
	in.clean()
	if res := inputval.Validate(in); res.HasErrors() {
		respond.Error(w, http.StatusBadRequest, res.First())
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "update course")
	defer cancel()

	res, err := h.Courses.Update(ctx, id, in.patch())
	if err != nil {
		reqlog.Logger(r.Context(), h.Log).Error("update course failed",
			zap.String("course_id", id.Hex()), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to update course")
		return
	}
	if res.Matched == 0 {
		respond.Error(w, http.StatusNotFound, msgNotFound)
		return
	}
	respond.OK(w, respond.Update{
		Acknowledged:  true,
		MatchedCount:  res.Matched,
		ModifiedCount: res.Modified,
	})
}
