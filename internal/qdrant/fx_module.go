package qdrant

import (
	"context"
	"sync"

	"go.uber.org/fx"

	"github.com/matchcolab/matchmaker/internal/logger"
)

// FXModule defines the Fx module for the Qdrant client.
//
// The module:
//  1. Provides NewConfig and NewClient to the dependency injection container.
//  2. Invokes RegisterQdrantLifecycle, which bootstraps the artist collection
//     on startup and closes the client on shutdown.
var FXModule = fx.Module("qdrant",
	fx.Provide(
		NewConfig,
		NewClient,
	),
	fx.Invoke(RegisterQdrantLifecycle),
)

// RegisterQdrantLifecycle ensures the artist collection exists before the
// service starts taking traffic, and cleans up the client on shutdown.
func RegisterQdrantLifecycle(lc fx.Lifecycle, client *Client, log *logger.Logger) {
	var once sync.Once

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.EnsureCollection(ctx)
		},
		OnStop: func(ctx context.Context) error {
			once.Do(func() {
				if err := client.Close(); err != nil {
					log.Warn("[Qdrant] close failed", err, nil)
				}
			})
			return nil
		},
	})
}
