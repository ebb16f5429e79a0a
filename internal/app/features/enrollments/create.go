// internal/app/features/enrollments/create.go
package enrollments

import (
	"context"
	"errors"
	"net/http"

	enrollmentstore "github.com/mahirsiam2004/altrion-server/internal/app/store/enrollments"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/htmlsanitize"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/inputval"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/limits"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/normalize"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/reqlog"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/respond"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/timeouts"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/txn"
	"github.com/mahirsiam2004/altrion-server/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const msgAlreadyEnrolled = "Already enrolled in this course"

type enrollInput struct {
	CourseID  string `json:"courseId" validate:"required,objectid" label:"Course id"`
	UserEmail string `json:"userEmail" validate:"required,email" label:"User email"`
	UserName  string `json:"userName" validate:"max=120" label:"User name"`
}

// Create serves POST /enrollments.
//
// The existence check answers the common repeat-click case without a
// write. The insert and the counter bump then run in one transaction, and
// the unique (courseId, userEmail) index rejects any request that raced
// past the check.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in enrollInput
	if !respond.DecodeJSON(w, r, limits.MaxEnrollmentBody, &in) {
		return
	}
	in.CourseID = normalize.QueryParam(in.CourseID)
	in.UserEmail = normalize.Email(in.UserEmail)
	in.UserName = htmlsanitize.Text(in.UserName)
	if res := inputval.Validate(in); res.HasErrors() {
		respond.Error(w, http.StatusBadRequest, res.First())
		return
	}
	courseID, _ := primitive.ObjectIDFromHex(in.CourseID)
	log := reqlog.Logger(r.Context(), h.Log).With(
		zap.String("course_id", in.CourseID),
		zap.String("user_email", in.UserEmail))

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "enroll")
	defer cancel()

	exists, err := h.Enrollments.Exists(ctx, courseID, in.UserEmail)
	if err != nil {
		log.Error("enrollment lookup failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to enroll")
		return
	}
	if exists {
		respond.Error(w, http.StatusBadRequest, msgAlreadyEnrolled)
		return
	}

	var (
		created models.Enrollment
		matched int64
	)
	err = txn.Run(ctx, h.DB, log, func(ctx context.Context) error {
		var err error
		created, err = h.Enrollments.Create(ctx, models.Enrollment{
			CourseID:  courseID,
			UserEmail: in.UserEmail,
			UserName:  in.UserName,
		})
		if err != nil {
			return err
		}
		matched, err = h.Courses.IncrementEnrolled(ctx, courseID, 1)
		return err
	})
	if errors.Is(err, enrollmentstore.ErrAlreadyEnrolled) {
		respond.Error(w, http.StatusBadRequest, msgAlreadyEnrolled)
		return
	}
	if err != nil {
		log.Error("enroll failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to enroll")
		return
	}
	if matched == 0 {
		log.Warn("enrolled in unknown course; counter not incremented")
	} else {
		log.Info("enrolled")
	}

	respond.OK(w, respond.Insert{Acknowledged: true, InsertedID: created.ID.Hex()})
}
