// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/mahirsiam2004/altrion-server/internal/app/features/home"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for Altrion.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, mongo_database, etc.
//   - Environment variables: ALTRION_MONGO_URI, ALTRION_MONGO_DATABASE, etc.
//   - Command-line flags: --mongo_uri, --mongo_database, etc.
//
// The connection string carries credentials; it has a local default and
// must be supplied through the environment or a config file elsewhere.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "altrion-db", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},
	{Name: "mongo_connect_timeout", Default: "10s", Desc: "MongoDB connect + ping timeout at startup (e.g., 10s, 1m)"},
	{Name: "liveness_message", Default: home.DefaultMessage, Desc: "Plain-text body served at GET /"},
	{Name: "write_rate_limit", Default: 60, Desc: "Write requests per client IP per minute (0 disables)"},
	{Name: "trust_proxy_headers", Default: "false", Desc: "Key the write limit by X-Forwarded-For/X-Real-IP (only behind a proxy that sets them)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, ALTRION_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "ALTRION", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	trustProxy, err := strconv.ParseBool(strings.TrimSpace(appValues.String("trust_proxy_headers")))
	if err != nil {
		return nil, AppConfig{}, fmt.Errorf("trust_proxy_headers: %w", err)
	}

	appCfg := AppConfig{
		MongoURI:            strings.TrimSpace(appValues.String("mongo_uri")),
		MongoDatabase:       strings.TrimSpace(appValues.String("mongo_database")),
		MongoMaxPoolSize:    uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize:    uint64(appValues.Int("mongo_min_pool_size")),
		MongoConnectTimeout: appValues.Duration("mongo_connect_timeout", 10*time.Second),
		LivenessMessage:     appValues.String("liveness_message"),
		WriteRateLimit:      appValues.Int("write_rate_limit"),
		TrustProxyHeaders:   trustProxy,
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig rejects configs that cannot possibly connect, so startup
// fails before the listener opens.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.MongoDatabase == "" {
		return errors.New("mongo_database must not be empty")
	}
	if appCfg.MongoMaxPoolSize == 0 {
		return errors.New("mongo_max_pool_size must be positive")
	}
	if appCfg.MongoMinPoolSize > appCfg.MongoMaxPoolSize {
		return fmt.Errorf("mongo_min_pool_size (%d) exceeds mongo_max_pool_size (%d)",
			appCfg.MongoMinPoolSize, appCfg.MongoMaxPoolSize)
	}
	if appCfg.MongoConnectTimeout <= 0 {
		return errors.New("mongo_connect_timeout must be positive")
	}
	if appCfg.WriteRateLimit < 0 {
		return errors.New("write_rate_limit must not be negative")
	}
	return nil
}
