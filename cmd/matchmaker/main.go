package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/matchcolab/matchmaker/internal/embedding"
	"github.com/matchcolab/matchmaker/internal/history"
	"github.com/matchcolab/matchmaker/internal/logger"
	"github.com/matchcolab/matchmaker/internal/matching"
	"github.com/matchcolab/matchmaker/internal/metrics"
	"github.com/matchcolab/matchmaker/internal/qdrant"
	"github.com/matchcolab/matchmaker/internal/server"
	"github.com/matchcolab/matchmaker/internal/store"
	"github.com/matchcolab/matchmaker/internal/tracer"
)

func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	app := fx.New(
		logger.FXModule,
		tracer.FXModule,
		metrics.FXModule,
		embedding.FXModule,
		qdrant.FXModule,
		history.FXModule,
		store.FXModule,
		matching.FXModule,
		server.FXModule,

		// Interface bindings. Packages depend on contracts they define;
		// the concrete implementations meet them here.
		fx.Provide(
			func(l *logger.Logger) tracer.Logger { return l },
			func(l *logger.Logger) store.Logger { return l },
			func(l *logger.Logger) matching.Logger { return l },
			func(l *logger.Logger) server.Logger { return l },

			func(c *embedding.Client) matching.Embedder { return c },
			func(c *qdrant.Client) store.VectorIndex { return c },
			func(r *history.Repository) store.SuccessSource { return r },
			func(s *store.ArtistStore) matching.ArtistStore { return s },
			func(m *matching.Matcher) server.MatchService { return m },
			func(c *qdrant.Client) server.IndexHealth { return c },
			func(r *history.Repository) server.DatabaseHealth { return r },
		),
	)

	app.Run()
}
