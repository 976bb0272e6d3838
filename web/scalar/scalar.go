// Package scalar serves the interactive API reference for the OpenAPI document.
package scalar

import (
	_ "embed"
	"net/http"

	"github.com/JaimeStill/design-lab/pkg/module"
)

//go:embed index.html
var indexHTML []byte

func Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(indexHTML)
	}
}

// NewModule mounts the reference page at prefix.
func NewModule(prefix string) *module.Module {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", Handler())
	return module.New(prefix, mux)
}
