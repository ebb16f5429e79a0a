// internal/app/features/courses/handler.go
package courses

import (
	coursestore "github.com/mahirsiam2004/altrion-server/internal/app/store/courses"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the /courses endpoints.
type Handler struct {
	Courses *coursestore.Store
	Log     *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Courses: coursestore.New(db),
		Log:     logger,
	}
}
