// internal/app/features/categories/handler.go
package categories

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	coursestore "github.com/mahirsiam2004/altrion-server/internal/app/store/courses"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/reqlog"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/respond"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Courses *coursestore.Store
	Log     *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{Courses: coursestore.New(db), Log: logger}
}

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	return r
}

// List serves GET /categories: each distinct course category once.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "categories")
	defer cancel()

	cats, err := h.Courses.Categories(ctx)
	if err != nil {
		reqlog.Logger(r.Context(), h.Log).Error("list categories failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	respond.OK(w, cats)
}
