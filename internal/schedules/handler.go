package schedules

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
				Pattern: "/schedules",
				Handler: h.List,
				OpenAPI: &openapi.Operation{
					Summary: "List schedules",
					Responses: map[int]*openapi.Response{
						200: openapi.ResponseArray("Schedules in display order", "Schedule"),
						500: openapi.ResponseRef("ServerError"),
					},
				},
			},
		},
		Schemas: map[string]*openapi.Schema{
			"Schedule": {
				Type: "object",
				Properties: map[string]*openapi.Schema{
					"date":  {Type: "string", Example: "2/10 (월)"},
					"event": {Type: "string"},
				},
				Required: []string{"date", "event"},
			},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.Guard(w, h.logger, "SchedulesFetchFailed", func() ([]Schedule, error) {
		return h.sys.List(r.Context())
	})
}
