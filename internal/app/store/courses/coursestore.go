// internal/app/store/courses/coursestore.go
package coursestore

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/mahirsiam2004/altrion-server/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FeaturedLimit caps the featured listing.
const FeaturedLimit = 6

var ErrNotFound = errors.New("course not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("courses")}
}

// Filter narrows List. Zero values impose no restriction.
type Filter struct {
	Category string
	Search   string // case-insensitive substring of the title
	Featured bool
}

func (f Filter) bson() bson.M {
	q := bson.M{}
	if f.Category != "" {
		q["category"] = f.Category
	}
	if f.Featured {
		q["isFeatured"] = true
	}
	if s := text.Fold(f.Search); s != "" {
		q["titleCI"] = primitive.Regex{Pattern: regexp.QuoteMeta(s)}
	}
	return q
}

func byInsertion() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
}

// List returns courses matching f in insertion order. No match is an
// empty slice, never nil.
func (s *Store) List(ctx context.Context, f Filter) ([]models.Course, error) {
	return s.find(ctx, f.bson(), byInsertion())
}

// ListFeatured returns up to FeaturedLimit featured courses.
func (s *Store) ListFeatured(ctx context.Context) ([]models.Course, error) {
	return s.find(ctx, bson.M{"isFeatured": true}, byInsertion().SetLimit(FeaturedLimit))
}

// ListByInstructor returns the courses whose instructor.email equals email.
func (s *Store) ListByInstructor(ctx context.Context, email string) ([]models.Course, error) {
	return s.find(ctx, bson.M{"instructor.email": email}, byInsertion())
}

// GetByID returns ErrNotFound when no course has this id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Course, error) {
	var c models.Course
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Course{}, ErrNotFound
	}
	if err != nil {
		return models.Course{}, err
	}
	return c, nil
}

// GetByIDs returns the courses among ids that still exist, in insertion
// order. Unknown ids are skipped.
func (s *Store) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Course, error) {
	if len(ids) == 0 {
		return []models.Course{}, nil
	}
	return s.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, byInsertion())
}

// Create inserts c with server-owned fields reset: a new id, equal
// createdAt/updatedAt, zero enrolledStudents and rating.
func (s *Store) Create(ctx context.Context, c models.Course) (models.Course, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)

	c.ID = primitive.NewObjectID()
	c.TitleCI = text.Fold(c.Title)
	c.EnrolledStudents = 0
	c.Rating = 0
	c.CreatedAt = now
	c.UpdatedAt = now

	if strings.TrimSpace(c.Title) == "" {
		return models.Course{}, mongo.CommandError{Message: "title is required"}
	}

	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.Course{}, err
	}
	return c, nil
}

// UpdateResult mirrors the driver's counts for an update.
type UpdateResult struct {
	Matched  int64
	Modified int64
}

// Update $sets the fields present in p and refreshes updatedAt. Fields
// absent from p, and the server-owned fields, are never touched.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p models.CoursePatch) (UpdateResult, error) {
	set := bson.M{"updatedAt": time.Now().UTC().Truncate(time.Millisecond)}
	if p.Title != nil {
		if strings.TrimSpace(*p.Title) == "" {
			return UpdateResult{}, mongo.CommandError{Message: "title cannot be empty"}
		}
		set["title"] = *p.Title
		set["titleCI"] = text.Fold(*p.Title)
	}
	// Description, image, duration and level can be cleared (set to empty)
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Category != nil {
		set["category"] = *p.Category
	}
	if p.Instructor != nil {
		set["instructor"] = *p.Instructor
	}
	if p.Image != nil {
		set["image"] = *p.Image
	}
	if p.Price != nil {
		set["price"] = *p.Price
	}
	if p.Duration != nil {
		set["duration"] = *p.Duration
	}
	if p.Level != nil {
		set["level"] = *p.Level
	}
	if p.IsFeatured != nil {
		set["isFeatured"] = *p.IsFeatured
	}

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

// Delete removes a course by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// IncrementEnrolled atomically adds delta to enrolledStudents and returns
// how many courses matched (0 when the id is stale).
func (s *Store) IncrementEnrolled(ctx context.Context, id primitive.ObjectID, delta int) (int64, error) {
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"enrolledStudents": delta}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// Categories returns every distinct category. Values that are not strings
// are skipped.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	vals, err := s.c.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if str, ok := v.(string); ok {
			out = append(out, str)
		}
	}
	return out, nil
}

func (s *Store) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Course, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	courses := []models.Course{}
	if err := cur.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}
