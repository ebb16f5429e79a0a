// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup from EnsureSchema. Each ensure* function is
idempotent. Errors are aggregated so every problem is visible and startup
fails fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureCourses(ctx, db); err != nil {
		problems = append(problems, "courses: "+err.Error())
	}
	// the unique (courseId, userEmail) pair is what makes duplicate
	// enrollment detection authoritative
	if err := ensureEnrollments(ctx, db); err != nil {
		problems = append(problems, "enrollments: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureCourses(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("courses")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("idx_courses_category__id"),
		},
		{
			Keys:    bson.D{{Key: "isFeatured", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("idx_courses_featured__id"),
		},
		{
			Keys:    bson.D{{Key: "instructor.email", Value: 1}},
			Options: options.Index().SetName("idx_courses_instructor_email"),
		},
		{
			Keys:    bson.D{{Key: "titleCI", Value: 1}},
			Options: options.Index().SetName("idx_courses_titleci"),
		},
	})
}

func ensureEnrollments(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("enrollments")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "courseId", Value: 1},
				{Key: "userEmail", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("uniq_enrollments_course_user"),
		},
		{
			Keys:    bson.D{{Key: "userEmail", Value: 1}, {Key: "enrolledAt", Value: 1}},
			Options: options.Index().SetName("idx_enrollments_user_enrolledat"),
		},
	})
}

/* -------------------------------------------------------------------------- */
/* Core helper: reconcile a set of desired indexes for one collection         */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func sameBoolPtr(a, b *bool) bool {
	return (a != nil && *a) == (b != nil && *b)
}

// Best-effort duplicate-detector (works cross-vendors)
func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 11000 {
		return true
	}
	s := err.Error()
	return strings.Contains(s, "E11000") || strings.Contains(strings.ToLower(s), "duplicate key")
}

// Mongo/DocDB sometimes returns IndexOptionsConflict when an index with the
// same keys already exists under a different name (or options differ).
func isOptionsConflictErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "IndexOptionsConflict")
}

func listExisting(ctx context.Context, coll *mongo.Collection) map[string]existingIndex {
	existing := map[string]existingIndex{} // sig -> index
	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		return existing
	}
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var idx existingIndex
		if err := cur.Decode(&idx); err != nil {
			zap.L().Warn("failed to decode existing index",
				zap.String("collection", coll.Name()),
				zap.Error(err))
			continue
		}
		existing[keySig(idx.Key)] = idx
	}
	return existing
}

// createErr explains a failed CreateOne. A unique index that cannot be
// built because of existing duplicates gets a finder query in the message.
func createErr(coll *mongo.Collection, name string, unique bool, err error) string {
	if unique && isDuplicateKeyErr(err) {
		helper := ""
		if coll.Name() == "enrollments" {
			helper = " — duplicate enrollments exist. Example finder:\n" +
				`db.enrollments.aggregate([{ $group: { _id: { c: "$courseId", u: "$userEmail" }, n: { $sum: 1 } } }, { $match: { n: { $gt: 1 } } }])`
		}
		return fmt.Sprintf("%s(%s): cannot create unique index (duplicates present)%s", coll.Name(), name, helper)
	}
	return fmt.Sprintf("%s(%s): %v", coll.Name(), name, err)
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string

	for _, m := range models {
		var desiredName string
		var desiredUnique *bool
		if m.Options != nil {
			if m.Options.Name != nil {
				desiredName = *m.Options.Name
			}
			desiredUnique = m.Options.Unique
		}
		unique := desiredUnique != nil && *desiredUnique
		desiredSig := keySig(m.Keys.(bson.D))
		log := zap.L().With(
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("keys", desiredSig),
			zap.Bool("unique", unique))

		start := time.Now()
		log.Info("ensuring index")

		existing := listExisting(ctx, coll)

		if ex, ok := existing[desiredSig]; ok {
			if sameBoolPtr(desiredUnique, ex.Unique) && (desiredName == "" || ex.Name == desiredName) {
				log.Info("reusing existing index", zap.String("took", time.Since(start).String()))
				continue
			}

			// Name or options differ (e.g. upgrading to unique). Drop & recreate.
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				log.Warn("drop existing index failed", zap.String("existing", ex.Name), zap.Error(err))
				errs = append(errs, fmt.Sprintf("%s(%s): drop failed: %v", coll.Name(), desiredName, err))
				continue
			}
			if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
				errs = append(errs, createErr(coll, desiredName, unique, err))
				continue
			}
			log.Info("index dropped and recreated",
				zap.String("from", ex.Name),
				zap.String("took", time.Since(start).String()))
			continue
		}

		created, err := coll.Indexes().CreateOne(ctx, m)
		if err == nil {
			log.Info("index ensured",
				zap.String("created_name", created),
				zap.String("took", time.Since(start).String()))
			continue
		}

		if isOptionsConflictErr(err) {
			// Same keys under another name appeared between List and Create.
			if match, ok := listExisting(ctx, coll)[desiredSig]; ok {
				if sameBoolPtr(desiredUnique, match.Unique) {
					log.Info("reusing existing index (post-conflict)",
						zap.String("existing", match.Name),
						zap.String("took", time.Since(start).String()))
					continue
				}
				if _, dropErr := coll.Indexes().DropOne(ctx, match.Name); dropErr != nil {
					log.Warn("failed to drop conflicting index", zap.String("existing", match.Name), zap.Error(dropErr))
				}
				if _, e3 := coll.Indexes().CreateOne(ctx, m); e3 != nil {
					errs = append(errs, createErr(coll, desiredName, unique, e3))
					continue
				}
				log.Info("index dropped and recreated (post-conflict)",
					zap.String("took", time.Since(start).String()))
				continue
			}
		}

		log.Warn("index ensure failed",
			zap.String("took", time.Since(start).String()),
			zap.Error(err))
		errs = append(errs, createErr(coll, desiredName, unique, err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
