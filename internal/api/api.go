// Package api assembles the /api module: domain systems, route groups,
// the OpenAPI document and the module middleware stack.
package api

import (
	"net/http"

	"github.com/JaimeStill/design-lab/internal/accesslog"
	"github.com/JaimeStill/design-lab/internal/auth"
	"github.com/JaimeStill/design-lab/internal/config"
	"github.com/JaimeStill/design-lab/internal/infrastructure"
	"github.com/JaimeStill/design-lab/pkg/middleware"
	"github.com/JaimeStill/design-lab/pkg/module"
	"github.com/JaimeStill/design-lab/pkg/openapi"
)

func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.Domain)

	mux := http.NewServeMux()
	registerRoutes(mux, spec, runtime, domain, cfg)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.TrimSlash())
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(auth.Middleware(runtime.Session))
	m.Use(accesslog.Middleware())

	return m, nil
}
