package categories_test

import (
	"net/http"
	"sort"
	"strings"
	"testing"

	"github.com/mahirsiam2004/altrion-server/internal/app/features/categories"
	"github.com/mahirsiam2004/altrion-server/internal/testutil"
	"go.uber.org/zap"
)

func TestList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	h := categories.Routes(categories.NewHandler(db, zap.NewNop()))

	t.Run("empty", func(t *testing.T) {
		rec := testutil.NewRecorder()
		h.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"))
		rec.AssertStatus(t, http.StatusOK)
		if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
			t.Errorf("body = %s, want []", body)
		}
	})

	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx.CreateCourse(ctx, "Go", testutil.Category("programming"))
	fx.CreateCourse(ctx, "Rust", testutil.Category("programming"))
	fx.CreateCourse(ctx, "Watercolor", testutil.Category("art"))
	fx.CreateCourse(ctx, "Sourdough", testutil.Category("cooking"))

	t.Run("each value once", func(t *testing.T) {
		rec := testutil.NewRecorder()
		h.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"))
		rec.AssertStatus(t, http.StatusOK)

		var got []string
		rec.DecodeJSON(t, &got)
		sort.Strings(got)
		if strings.Join(got, ",") != "art,cooking,programming" {
			t.Errorf("got %v", got)
		}
	})
}
