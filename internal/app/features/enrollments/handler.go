// internal/app/features/enrollments/handler.go
package enrollments

import (
	coursestore "github.com/mahirsiam2004/altrion-server/internal/app/store/courses"
	enrollmentstore "github.com/mahirsiam2004/altrion-server/internal/app/store/enrollments"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	DB          *mongo.Database // for transactions
	Courses     *coursestore.Store
	Enrollments *enrollmentstore.Store
	Log         *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:          db,
		Courses:     coursestore.New(db),
		Enrollments: enrollmentstore.New(db),
		Log:         logger,
	}
}
