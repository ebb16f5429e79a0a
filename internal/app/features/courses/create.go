// internal/app/features/courses/create.go
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

// Create serves POST /courses.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in createInput
	if !respond.DecodeJSON(w, r, limits.MaxCourseBody, &in) {
		return
	}
	in.clean()
	if res := inputval.Validate(in); res.HasErrors() {
		respond.Error(w, http.StatusBadRequest, res.First())
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "create course")
	defer cancel()

	c, err := h.Courses.Create(ctx, in.model())
	if err != nil {
		reqlog.Logger(r.Context(), h.Log).Error("create course failed",
			zap.String("title", in.Title), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to create course")
		return
	}

	reqlog.Logger(r.Context(), h.Log).Info("course created",
		zap.String("course_id", c.ID.Hex()),
		zap.String("category", c.Category))
	respond.OK(w, respond.Insert{Acknowledged: true, InsertedID: c.ID.Hex()})
}
