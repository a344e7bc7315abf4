package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/matchcolab/matchmaker/internal/matching"
	"github.com/matchcolab/matchmaker/internal/metrics"
)

// MatchService is the match pipeline the HTTP layer fronts.
// Implemented by *matching.Matcher.
//
//go:generate mockgen -source=setup.go -destination=mock_deps.go -package=server
type MatchService interface {
	Match(ctx context.Context, q matching.MatchQuery) (*matching.MatchResponse, error)
}

// IndexHealth reports reachability of the vector index.
// Implemented by *qdrant.Client.
type IndexHealth interface {
	Health(ctx context.Context) error
}

// DatabaseHealth reports reachability of the collaboration database.
// Implemented by *history.Repository.
type DatabaseHealth interface {
	Ping(ctx context.Context) error
}

// Logger defines the logging interface used by the server.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Server hosts the HTTP API of the matchmaking service.
type Server struct {
	cfg     Config
	http    *http.Server
	engine  *gin.Engine
	matcher MatchService
	index   IndexHealth
	db      DatabaseHealth
	metrics *metrics.Metrics
	logger  Logger
}

// NewServer wires the gin engine with middleware and routes. The metrics
// instance may be nil, in which case no request metrics are recorded.
func NewServer(cfg Config, matcher MatchService, index IndexHealth, db DatabaseHealth, m *metrics.Metrics, log Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		cfg:     cfg,
		engine:  engine,
		matcher: matcher,
		index:   index,
		db:      db,
		metrics: m,
		logger:  log,
	}

	engine.Use(s.corsMiddleware())
	engine.Use(s.observeMiddleware())

	engine.GET("/", s.handleRoot)
	engine.GET("/health", s.handleHealth)
	engine.POST("/match", s.handleMatch)

	s.http = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}
	return s, nil
}

// Start begins serving in the calling goroutine. It returns when the server
// is shut down; http.ErrServerClosed is not treated as an error by callers.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", nil, map[string]interface{}{
		"address": s.http.Addr,
	})
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// corsMiddleware applies the configured origin allow-list.
func (s *Server) corsMiddleware() gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}
	if len(s.cfg.AllowedOrigins) == 1 && s.cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.cfg.AllowedOrigins
	}
	return cors.New(corsCfg)
}

// observeMiddleware logs each request and feeds the request metrics.
func (s *Server) observeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		status := c.Writer.Status()

		if s.metrics != nil {
			s.metrics.IncrementRequests(endpoint, fmt.Sprintf("%d", status))
			s.metrics.RecordRequestDuration(start, endpoint)
		}

		s.logger.Debug("request handled", nil, map[string]interface{}{
			"method":      c.Request.Method,
			"endpoint":    endpoint,
			"status":      status,
			"duration_ms": time.Since(start).Milliseconds(),
		})
	}
}
