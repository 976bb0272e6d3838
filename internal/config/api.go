package config

import (
	"fmt"
	"os"

	"github.com/JaimeStill/design-lab/pkg/middleware"
	"github.com/JaimeStill/design-lab/pkg/openapi"
	"github.com/JaimeStill/design-lab/pkg/pagination"
)

const EnvAPIBasePath = "API_BASE_PATH"

var corsEnv = &middleware.CORSEnv{
	Enabled:          "API_CORS_ENABLED",
	Origins:          "API_CORS_ORIGINS",
	AllowedMethods:   "API_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "API_CORS_ALLOWED_HEADERS",
	AllowCredentials: "API_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "API_CORS_MAX_AGE",
}

var openAPIEnv = &openapi.ConfigEnv{
	Title:       "API_OPENAPI_TITLE",
	Description: "API_OPENAPI_DESCRIPTION",
}

var accessLogPageEnv = &pagination.ConfigEnv{
	DefaultPageSize: "API_ACCESS_LOGS_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "API_ACCESS_LOGS_MAX_PAGE_SIZE",
}

// APIConfig configures the /api module: mount path, CORS, access log paging and OpenAPI metadata.
type APIConfig struct {
	BasePath   string                `toml:"base_path"`
	CORS       middleware.CORSConfig `toml:"cors"`
	AccessLogs pagination.Config     `toml:"access_logs"`
	OpenAPI    openapi.Config        `toml:"openapi"`
}

// Finalize applies defaults, loads environment overrides, and validates nested sections.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.AccessLogs.Finalize(accessLogPageEnv); err != nil {
		return fmt.Errorf("access_logs: %w", err)
	}
	if err := c.OpenAPI.Finalize(openAPIEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	c.CORS.Merge(&overlay.CORS)
	c.AccessLogs.Merge(&overlay.AccessLogs)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.AccessLogs.DefaultPageSize == 0 {
		c.AccessLogs.DefaultPageSize = 50
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPIBasePath); v != "" {
		c.BasePath = v
	}
}
