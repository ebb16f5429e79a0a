// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	categoriesfeature "github.com/mahirsiam2004/altrion-server/internal/app/features/categories"
	coursesfeature "github.com/mahirsiam2004/altrion-server/internal/app/features/courses"
	enrollmentsfeature "github.com/mahirsiam2004/altrion-server/internal/app/features/enrollments"
	errorsfeature "github.com/mahirsiam2004/altrion-server/internal/app/features/errors"
	healthfeature "github.com/mahirsiam2004/altrion-server/internal/app/features/health"
	homefeature "github.com/mahirsiam2004/altrion-server/internal/app/features/home"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/ratelimit"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/reqlog"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. Every feature gets the database from
// deps; there is no shared connection state outside DBDeps.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.AltrionMongoDatabase
	var writeLimiter *ratelimit.Limiter
	if appCfg.WriteRateLimit > 0 {
		writeLimiter = ratelimit.New(appCfg.WriteRateLimit, time.Minute)
		writeLimiter.TrustProxy = appCfg.TrustProxyHeaders
	}
	errorsHandler := errorsfeature.NewHandler(logger)

	r := chi.NewRouter()
	r.Use(reqlog.Middleware(logger))
	r.Use(errorsHandler.Recover)

	// Set before mounting so subrouters inherit them.
	r.NotFound(errorsHandler.NotFound)
	r.MethodNotAllowed(errorsHandler.MethodNotAllowed)

	// Liveness text for uptime monitors
	homeHandler := homefeature.NewHandler(appCfg.LivenessMessage, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.AltrionMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Catalog
	coursesHandler := coursesfeature.NewHandler(db, logger)
	r.Mount("/courses", coursesfeature.Routes(coursesHandler, writeLimiter))

	categoriesHandler := categoriesfeature.NewHandler(db, logger)
	r.Mount("/categories", categoriesfeature.Routes(categoriesHandler))

	// Enrollment
	enrollmentsHandler := enrollmentsfeature.NewHandler(db, logger)
	r.Mount("/enrollments", enrollmentsfeature.Routes(enrollmentsHandler, writeLimiter))

	return r, nil
}
