package server

import (
	"context"
	"net/http"

	"go.uber.org/fx"

	"github.com/matchcolab/matchmaker/internal/logger"
)

// FXModule provides the HTTP server and ties it to the fx lifecycle.
var FXModule = fx.Module("server",
	fx.Provide(
		NewConfig,
		NewServer,
	),
	fx.Invoke(RegisterServerLifecycle),
)

// RegisterServerLifecycle starts the HTTP server on application start and
// drains it gracefully on stop.
func RegisterServerLifecycle(lc fx.Lifecycle, s *Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := s.Start(); err != nil && err != http.ErrServerClosed {
					log.Fatal("HTTP server failed", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down HTTP server", nil, nil)
			return s.Shutdown(ctx)
		},
	})
}
