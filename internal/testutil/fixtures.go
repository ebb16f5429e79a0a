package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"github.com/mahirsiam2004/altrion-server/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that call a handler method directly.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}
	rctx.URLParams.Add(key, value)
	return r
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CourseOpt adjusts a fixture course before it is inserted.
type CourseOpt func(*models.Course)

func Featured() CourseOpt { return func(c *models.Course) { c.IsFeatured = true } }

func Category(cat string) CourseOpt { return func(c *models.Course) { c.Category = cat } }

func InstructorEmail(email string) CourseOpt {
	return func(c *models.Course) { c.Instructor.Email = email }
}

func Enrolled(n int) CourseOpt { return func(c *models.Course) { c.EnrolledStudents = n } }

// CreateCourse inserts a course directly (bypassing the store) with
// category "programming" and a placeholder instructor unless opts say
// otherwise.
func (f *Fixtures) CreateCourse(ctx context.Context, title string, opts ...CourseOpt) models.Course {
	f.t.Helper()

	now := time.Now().UTC().Truncate(time.Millisecond)
	c := models.Course{
		ID:         primitive.NewObjectID(),
		Title:      title,
		TitleCI:    text.Fold(title),
		Category:   "programming",
		Instructor: models.Instructor{Name: "Test Instructor", Email: "instructor@test.com"},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, o := range opts {
		o(&c)
	}

	if _, err := f.db.Collection("courses").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test course: %v", err)
	}
	return c
}

// CreateEnrollment records userEmail as enrolled in courseID without
// touching the course counter.
func (f *Fixtures) CreateEnrollment(ctx context.Context, courseID primitive.ObjectID, userEmail string) models.Enrollment {
	f.t.Helper()

	e := models.Enrollment{
		ID:         primitive.NewObjectID(),
		CourseID:   courseID,
		UserEmail:  userEmail,
		EnrolledAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	if _, err := f.db.Collection("enrollments").InsertOne(ctx, e); err != nil {
		f.t.Fatalf("failed to create test enrollment: %v", err)
	}
	return e
}
