package api

import (
	"net/http"

	"github.com/JaimeStill/design-lab/internal/accesslog"
	"github.com/JaimeStill/design-lab/internal/auth"
	"github.com/JaimeStill/design-lab/internal/awards"
	"github.com/JaimeStill/design-lab/internal/config"
	"github.com/JaimeStill/design-lab/internal/gallery"
	"github.com/JaimeStill/design-lab/internal/home"
	"github.com/JaimeStill/design-lab/internal/notices"
	"github.com/JaimeStill/design-lab/internal/quicklinks"
	"github.com/JaimeStill/design-lab/internal/schedules"
	"github.com/JaimeStill/design-lab/pkg/openapi"
	"github.com/JaimeStill/design-lab/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
	cfg *config.Config,
) {
	policy := runtime.Session.Policy()
	provider := auth.NewProvider(runtime.Session, runtime.Logger, cfg.API.BasePath)

	authHandler := auth.NewHandler(runtime.Session, provider, runtime.Logger)
	galleryHandler := gallery.NewHandler(domain.Gallery, policy, domain.AccessLogs, runtime.Logger, runtime.MaxPostSize)
	noticesHandler := notices.NewHandler(domain.Notices, runtime.Logger)
	schedulesHandler := schedules.NewHandler(domain.Schedules, runtime.Logger)
	quickLinksHandler := quicklinks.NewHandler(domain.QuickLinks, runtime.Logger)
	homeHandler := home.NewHandler(domain.Home, domain.Notices, policy, domain.AccessLogs, runtime.Logger, runtime.MaxPostSize)
	accessLogHandler := accesslog.NewHandler(domain.AccessLogs, policy, runtime.Pagination, runtime.Logger)

	routes.Register(
		mux,
		cfg.API.BasePath,
		spec,
		authHandler.Routes(),
		galleryHandler.Routes(),
		noticesHandler.Routes(),
		schedulesHandler.Routes(),
		quickLinksHandler.Routes(),
		homeHandler.Routes(),
		accessLogHandler.Routes(),
		awards.Routes(),
	)
}
