package notices

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
		Prefix:      "/data",
		Tags:        []string{"Home"},
		Description: "Home page bulletins",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/notices", Handler: h.List, OpenAPI: listSpec},
		},
		Schemas: map[string]*openapi.Schema{
			"Notice": {
				Type: "object",
				Properties: map[string]*openapi.Schema{
					"id":         {Type: "string", Format: "uuid", Description: "Present in operator views"},
					"title":      {Type: "string"},
					"date":       {Type: "string", Example: "2024.02.09"},
					"badge":      {Type: "string", Example: "공지"},
					"badgeColor": {Type: "string", Example: "bg-gray-700"},
				},
				Required: []string{"title", "date", "badge", "badgeColor"},
			},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.Guard(w, h.logger, "NoticesFetchFailed", func() ([]Notice, error) {
		return h.sys.List(r.Context())
	})
}

var listSpec = &openapi.Operation{
	Summary:     "List notices",
	Description: "Returns every notice, newest first",
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseArray("Notices", "Notice"),
		500: openapi.ResponseRef("ServerError"),
	},
}
