package api

import (
	"github.com/JaimeStill/design-lab/internal/auth"
	"github.com/JaimeStill/design-lab/internal/config"
	"github.com/JaimeStill/design-lab/internal/infrastructure"
	"github.com/JaimeStill/design-lab/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration and the session system.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination  pagination.Config
	Session     auth.System
	MaxPostSize int64
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	logger := infra.Logger.With("module", "api")

	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    logger,
			Database:  infra.Database,
		},
		Pagination:  cfg.API.AccessLogs,
		Session:     auth.New(&cfg.Session, logger),
		MaxPostSize: cfg.Content.MaxPostSizeBytes(),
	}
}
