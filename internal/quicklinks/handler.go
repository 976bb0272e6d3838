package quicklinks

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/design-lab/pkg/handlers"
	"github.com/JaimeStill/design-lab/pkg/openapi"
	"github.com/JaimeStill/design-lab/pkg/routes"
)

type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{sys: sys, logger: logger}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/data",
		Tags:   []string{"Home"},
		Routes: []routes.Route{
			{
				Method:  "GET",
				Pattern: "/quick-links",
				Handler: h.List,
				OpenAPI: &openapi.Operation{
					Summary: "List quick links",
					Responses: map[int]*openapi.Response{
						200: openapi.ResponseArray("Quick links", "QuickLink"),
						500: openapi.ResponseRef("ServerError"),
					},
				},
			},
		},
		Schemas: map[string]*openapi.Schema{
			"QuickLink": {
				Type: "object",
				Properties: map[string]*openapi.Schema{
					"text": {Type: "string"},
					"href": {Type: "string"},
				},
				Required: []string{"text", "href"},
			},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.Guard(w, h.logger, "QuickLinksFetchFailed", func() ([]QuickLink, error) {
		return h.sys.List(r.Context())
	})
}
