package awards

import (
	"net/http"

	"github.com/JaimeStill/design-lab/pkg/handlers"
	"github.com/JaimeStill/design-lab/pkg/openapi"
	"github.com/JaimeStill/design-lab/pkg/routes"
)

var filtersOp = &openapi.Operation{
	Summary:     "Award category filters",
	Description: "Returns the all option followed by one option per award category",
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseArray("Filter options", "FilterOption"),
	},
}

// Routes exposes the category filter list under /data.
func Routes() routes.Group {
	return routes.Group{
		Prefix:      "/data",
		Tags:        []string{"Awards"},
		Description: "Award showcase metadata",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/award-filters", Handler: handleFilters, OpenAPI: filtersOp},
		},
		Schemas: Schemas(),
	}
}

func handleFilters(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, CategoryFilters())
}
