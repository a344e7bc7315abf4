package history

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Logger defines the interface for logging operations within the history package.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=history
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Repository provides access to the collaboration-history database.
// Construction establishes the connection and runs migrations; a
// misconfigured or unreachable database fails here, not on first query.
type Repository struct {
	db     *gorm.DB
	logger Logger
}

// NewRepository connects to Postgres with the provided configuration,
// migrates the collaborations table, and returns the repository.
func NewRepository(cfg Config, logger Logger) (*Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Collaboration{}); err != nil {
		return nil, fmt.Errorf("history: migration failed: %w", err)
	}

	return &Repository{db: db, logger: logger}, nil
}

// connect establishes a connection to the Postgres database using the provided
// configuration. It sets up the connection string, opens the connection with
// GORM, and configures the connection pool.
func connect(cfg Config, logger Logger) (*gorm.DB, error) {
	pgConnStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Connection.Host,
		cfg.Connection.Port,
		cfg.Connection.User,
		cfg.Connection.Password,
		cfg.Connection.DbName,
		cfg.Connection.SSLMode)

	db, err := gorm.Open(
		postgres.Open(pgConnStr),
		&gorm.Config{
			TranslateError: true,
			Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		})
	if err != nil {
		return nil, fmt.Errorf("history: failed to connect to Postgres: %w", err)
	}

	instance, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("history: failed to get database instance: %w", err)
	}

	instance.SetMaxOpenConns(cfg.ConnectionDetails.MaxOpenConns)
	instance.SetMaxIdleConns(cfg.ConnectionDetails.MaxIdleConns)

	logger.Info("history: connected to Postgres", nil, map[string]interface{}{
		"host": cfg.Connection.Host,
		"db":   cfg.Connection.DbName,
	})

	return db, nil
}

// Ping verifies database connectivity. Used by readiness reporting.
func (r *Repository) Ping(ctx context.Context) error {
	instance, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("history: failed to get database instance: %w", err)
	}
	return instance.PingContext(ctx)
}

// Close releases the underlying connection pool.
func (r *Repository) Close() error {
	instance, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("history: failed to get database instance: %w", err)
	}
	return instance.Close()
}
