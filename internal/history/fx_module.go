package history

import (
	"context"

	"go.uber.org/fx"

	"github.com/matchcolab/matchmaker/internal/logger"
)

// FXModule defines the Fx module for the collaboration-history repository.
var FXModule = fx.Module("history",
	fx.Provide(
		NewConfig,
		func(cfg Config, log *logger.Logger) (*Repository, error) {
			return NewRepository(cfg, log)
		},
	),
	fx.Invoke(RegisterHistoryLifecycle),
)

// RegisterHistoryLifecycle closes the connection pool on shutdown.
func RegisterHistoryLifecycle(lc fx.Lifecycle, repo *Repository) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return repo.Close()
		},
	})
}
