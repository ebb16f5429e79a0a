// internal/app/store/enrollments/enrollmentstore.go
package enrollmentstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/mahirsiam2004/altrion-server/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrAlreadyEnrolled = errors.New("already enrolled in this course")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("enrollments")}
}

// Exists reports whether userEmail already has an enrollment for courseID.
func (s *Store) Exists(ctx context.Context, courseID primitive.ObjectID, userEmail string) (bool, error) {
	n, err := s.c.CountDocuments(ctx,
		bson.M{"courseId": courseID, "userEmail": userEmail},
		options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create inserts e with a new id and enrolledAt=now. The unique
// (courseId, userEmail) index turns a concurrent duplicate into
// ErrAlreadyEnrolled.
func (s *Store) Create(ctx context.Context, e models.Enrollment) (models.Enrollment, error) {
	e.ID = primitive.NewObjectID()
	e.EnrolledAt = time.Now().UTC().Truncate(time.Millisecond)

	if _, err := s.c.InsertOne(ctx, e); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Enrollment{}, ErrAlreadyEnrolled
		}
		return models.Enrollment{}, err
	}
	return e, nil
}

// ListByUser returns the user's enrollments, oldest first.
func (s *Store) ListByUser(ctx context.Context, userEmail string) ([]models.Enrollment, error) {
	cur, err := s.c.Find(ctx, bson.M{"userEmail": userEmail},
		options.Find().SetSort(bson.D{{Key: "enrolledAt", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Enrollment{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CourseIDsByUser returns the distinct course ids the user is enrolled in,
// in enrollment order.
func (s *Store) CourseIDsByUser(ctx context.Context, userEmail string) ([]primitive.ObjectID, error) {
	rows, err := s.ListByUser(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	seen := make(map[primitive.ObjectID]struct{}, len(rows))
	ids := make([]primitive.ObjectID, 0, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.CourseID]; ok {
			continue
		}
		seen[r.CourseID] = struct{}{}
		ids = append(ids, r.CourseID)
	}
	return ids, nil
}

// CountByCourse returns how many enrollment records reference courseID.
func (s *Store) CountByCourse(ctx context.Context, courseID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"courseId": courseID})
}
