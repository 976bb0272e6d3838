package routes

import (
	"net/http"

	"github.com/JaimeStill/design-lab/pkg/openapi"
)

// Route binds an HTTP method and pattern to a handler.
// Pattern is relative to the enclosing Group prefix and may use net/http wildcards.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}
