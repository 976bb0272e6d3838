package main

import (
	"database/sql"
	"errors"

	"github.com/JaimeStill/design-lab/internal/infrastructure"
)

var errDatabaseDisabled = errors.New("database is not enabled: set [database] enabled = true or DATABASE_ENABLED=true")

type commandEnv struct {
	infra *infrastructure.Infrastructure
	db    *sql.DB
}

// withDatabase runs fn against a started database and releases the
// connection when fn returns.
func withDatabase(fn func(env *commandEnv) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.Database.Enabled {
		return errDatabaseDisabled
	}

	infra, err := infrastructure.New(cfg)
	if err != nil {
		return err
	}
	if err := infra.Start(); err != nil {
		return err
	}
	defer func() {
		if err := infra.Lifecycle.Shutdown(cfg.ShutdownTimeoutDuration()); err != nil {
			infra.Logger.Error("shutdown failed", "error", err)
		}
	}()

	return fn(&commandEnv{infra: infra, db: infra.Database.Connection()})
}
