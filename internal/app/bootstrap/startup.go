// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Startup runs after the DB is connected and indexed, before the handler is
// built. It applies TIMEOUT_* overrides so every handler sees them.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	n := timeouts.ConfigureFromEnv()
	cur := timeouts.Current()
	logger.Info("operation timeouts",
		zap.Int("overrides", n),
		zap.Duration("ping", cur.Ping),
		zap.Duration("short", cur.Short),
		zap.Duration("medium", cur.Medium),
		zap.Duration("long", cur.Long))
	return nil
}
