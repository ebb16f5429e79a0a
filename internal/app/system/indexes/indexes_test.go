package indexes_test

import (
	"testing"

	"github.com/mahirsiam2004/altrion-server/internal/app/system/indexes"
	"github.com/mahirsiam2004/altrion-server/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func indexNames(t *testing.T, db *mongo.Database, coll string) map[string]bool {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cur, err := db.Collection(coll).Indexes().List(ctx)
	if err != nil {
		t.Fatalf("List indexes failed: %v", err)
	}
	defer cur.Close(ctx)

	names := make(map[string]bool)
	for cur.Next(ctx) {
		var idx bson.M
		if err := cur.Decode(&idx); err != nil {
			continue
		}
		if name, ok := idx["name"].(string); ok {
			names[name] = true
		}
	}
	return names
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("first EnsureAll failed: %v", err)
	}
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_CreatesIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	want := map[string][]string{
		"courses": {
			"idx_courses_category__id",
			"idx_courses_featured__id",
			"idx_courses_instructor_email",
			"idx_courses_titleci",
		},
		"enrollments": {
			"uniq_enrollments_course_user",
			"idx_enrollments_user_enrolledat",
		},
	}
	for coll, names := range want {
		got := indexNames(t, db, coll)
		for _, n := range names {
			if !got[n] {
				t.Errorf("expected index %q on %s", n, coll)
			}
		}
	}
}

func TestEnsureAll_RenamesExistingIndex(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Same keys, driver-generated name.
	_, err := db.Collection("courses").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "instructor.email", Value: 1}},
	})
	if err != nil {
		t.Fatalf("seed index: %v", err)
	}

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	got := indexNames(t, db, "courses")
	if !got["idx_courses_instructor_email"] {
		t.Error("expected index to be renamed to idx_courses_instructor_email")
	}
	if got["instructor.email_1"] {
		t.Error("expected driver-named index to be dropped")
	}
}

func TestEnsureAll_UniqueEnrollmentRejectsDuplicates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	cid := primitive.NewObjectID()
	if _, err := db.Collection("enrollments").InsertOne(ctx, bson.M{"courseId": cid, "userEmail": "a@x.com"}); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	_, err := db.Collection("enrollments").InsertOne(ctx, bson.M{"courseId": cid, "userEmail": "a@x.com"})
	if !mongo.IsDuplicateKeyError(err) {
		t.Errorf("expected duplicate key error, got %v", err)
	}
}

func TestEnsureAll_ReportsExistingDuplicates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cid := primitive.NewObjectID()
	for i := 0; i < 2; i++ {
		if _, err := db.Collection("enrollments").InsertOne(ctx, bson.M{"courseId": cid, "userEmail": "dup@x.com"}); err != nil {
			t.Fatalf("seed insert: %v", err)
		}
	}

	err := indexes.EnsureAll(ctx, db)
	if err == nil {
		t.Fatal("expected EnsureAll to fail on duplicate enrollments")
	}
}
