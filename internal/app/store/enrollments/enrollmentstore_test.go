package enrollmentstore_test

import (
	"errors"
	"testing"

	enrollmentstore "github.com/mahirsiam2004/altrion-server/internal/app/store/enrollments"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/indexes"
	"github.com/mahirsiam2004/altrion-server/internal/domain/models"
	"github.com/mahirsiam2004/altrion-server/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := enrollmentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cid := primitive.NewObjectID()
	e, err := store.Create(ctx, models.Enrollment{CourseID: cid, UserEmail: "s@x.com"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if e.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if e.EnrolledAt.IsZero() {
		t.Error("expected EnrolledAt to be set")
	}

	ok, err := store.Exists(ctx, cid, "s@x.com")
	if err != nil || !ok {
		t.Errorf("Exists = %v, %v; want true", ok, err)
	}
	ok, err = store.Exists(ctx, cid, "other@x.com")
	if err != nil || ok {
		t.Errorf("Exists(other) = %v, %v; want false", ok, err)
	}
}

func TestStore_Create_DuplicateWithIndex(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := enrollmentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	e := models.Enrollment{CourseID: primitive.NewObjectID(), UserEmail: "s@x.com"}
	if _, err := store.Create(ctx, e); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	_, err := store.Create(ctx, e)
	if !errors.Is(err, enrollmentstore.ErrAlreadyEnrolled) {
		t.Errorf("expected ErrAlreadyEnrolled, got %v", err)
	}
	n, _ := store.CountByCourse(ctx, e.CourseID)
	if n != 1 {
		t.Errorf("expected 1 record, got %d", n)
	}
}

func TestStore_CourseIDsByUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := enrollmentstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	fx.CreateEnrollment(ctx, a, "s@x.com")
	fx.CreateEnrollment(ctx, b, "s@x.com")
	fx.CreateEnrollment(ctx, a, "s@x.com") // legacy duplicate, no index
	fx.CreateEnrollment(ctx, a, "other@x.com")

	ids, err := store.CourseIDsByUser(ctx, "s@x.com")
	if err != nil {
		t.Fatalf("CourseIDsByUser failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != a || ids[1] != b {
		t.Errorf("got %v, want [%v %v]", ids, a, b)
	}

	none, err := store.CourseIDsByUser(ctx, "nobody@x.com")
	if err != nil || len(none) != 0 {
		t.Errorf("CourseIDsByUser(nobody) = %v, %v", none, err)
	}
}
