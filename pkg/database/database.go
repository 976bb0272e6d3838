package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/JaimeStill/design-lab/pkg/lifecycle"
)

// System owns the connection pool.
// Connection returns nil when the database is disabled.
type System interface {
	Connection() *sql.DB
	Enabled() bool
	Start(lc *lifecycle.Coordinator) error
}

type database struct {
	conn        *sql.DB
	logger      *slog.Logger
	connTimeout time.Duration
}

// New opens a pool from cfg without connecting. A disabled config yields a System with no connection.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	logger = logger.With("system", "database")

	if !cfg.Enabled {
		return &database{logger: logger}, nil
	}

	db, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &database{
		conn:        db,
		logger:      logger,
		connTimeout: cfg.ConnTimeoutDuration(),
	}, nil
}

func (d *database) Connection() *sql.DB {
	return d.conn
}

func (d *database) Enabled() bool {
	return d.conn != nil
}

// Start verifies connectivity and closes the pool when the coordinator shuts down.
func (d *database) Start(lc *lifecycle.Coordinator) error {
	if d.conn == nil {
		d.logger.Info("database disabled, serving built-in catalog")
		return nil
	}

	d.logger.Info("starting database connection")

	pingCtx, cancel := context.WithTimeout(lc.Context(), d.connTimeout)
	defer cancel()

	if err := d.conn.PingContext(pingCtx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	d.logger.Info("database connection established")

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		d.logger.Info("closing database connection")

		if err := d.conn.Close(); err != nil {
			d.logger.Error("database close error", "error", err)
			return
		}
		d.logger.Info("database connection closed")
	})

	return nil
}
