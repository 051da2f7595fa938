package bootstrap

import (
	"context"
	"log/slog"

	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(newPool),
)

// newPool connects, runs pending migrations, and ties the pool to the
// fx lifecycle.
func newPool(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(pool); err != nil {
		cleanup()
		return nil, err
	}
	slog.Info("database ready", "host", cfg.DB.Host, "db", cfg.DB.DBName)

	lc.Append(fx.StopHook(cleanup))
	return pool, nil
}
