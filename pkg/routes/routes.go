package routes

import (
	"net/http"

	"github.com/JaimeStill/design-lab/pkg/openapi"
)

// Register adds every route of the groups to mux and documents them in spec.
// Mux patterns are relative to the module; spec paths are prefixed with basePath.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) {
	for _, group := range groups {
		group.AddToSpec(basePath, spec)
		registerGroup(mux, "", group)
	}
}

func registerGroup(mux *http.ServeMux, parentPrefix string, group Group) {
	fullPrefix := parentPrefix + group.Prefix

	for _, route := range group.Routes {
		pattern := route.Method + " " + fullPrefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}

	for _, child := range group.Children {
		registerGroup(mux, fullPrefix, child)
	}
}
