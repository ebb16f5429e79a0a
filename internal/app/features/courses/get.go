// internal/app/features/courses/get.go
package courses

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	coursestore "github.com/mahirsiam2004/altrion-server/internal/app/store/courses"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/reqlog"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/respond"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	msgInvalidID = "Invalid course id"
	msgNotFound  = "Course not found"
)

// courseID parses the {id} route param, writing a 400 when it is malformed.
func courseID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, msgInvalidID)
		return primitive.NilObjectID, false
	}
	return id, true
}

// Get serves GET /courses/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := courseID(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get course")
	defer cancel()

	c, err := h.Courses.GetByID(ctx, id)
	if errors.Is(err, coursestore.ErrNotFound) {
		respond.Error(w, http.StatusNotFound, msgNotFound)
		return
	}
	if err != nil {
		reqlog.Logger(r.Context(), h.Log).Error("get course failed",
			zap.String("course_id", id.Hex()), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch course")
		return
	}
	respond.OK(w, c)
}
