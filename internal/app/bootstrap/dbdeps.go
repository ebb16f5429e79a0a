// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app. Handlers receive
// the database from here; nothing holds a package-level connection.
type DBDeps struct {
	AltrionMongoClient   *mongo.Client
	AltrionMongoDatabase *mongo.Database
}
