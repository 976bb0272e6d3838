// Package module mounts isolated HTTP handlers under single-level path prefixes.
package module

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JaimeStill/design-lab/pkg/middleware"
)

// Module is a handler mounted at a single-level prefix with its own middleware.
type Module struct {
	prefix     string
	router     http.Handler
	middleware middleware.System
}

// New creates a Module. It panics when prefix is not of the form "/name".
func New(prefix string, router http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix:     prefix,
		router:     router,
		middleware: middleware.New(),
	}
}

// Prefix returns the mount prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware to the module stack.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware.Use(mw)
}

// Handler returns the router wrapped in the module middleware.
func (m *Module) Handler() http.Handler {
	return m.middleware.Apply(m.router)
}

// Serve strips the module prefix from the request path and dispatches it.
func (m *Module) Serve(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, m.prefix)
	if path == "" {
		path = "/"
	}

	r := req.Clone(req.Context())
	r.URL.Path = path
	r.URL.RawPath = ""

	m.Handler().ServeHTTP(&prefixWriter{ResponseWriter: w, prefix: m.prefix}, r)
}

// prefixWriter restores the module prefix on redirects issued by the inner
// handlers, whose Location paths are relative to the module.
type prefixWriter struct {
	http.ResponseWriter
	prefix string
}

func (pw *prefixWriter) WriteHeader(status int) {
	if status >= 300 && status < 400 {
		h := pw.Header()
		if loc := h.Get("Location"); strings.HasPrefix(loc, "/") && !strings.HasPrefix(loc, "//") {
			h.Set("Location", pw.prefix+loc)
		}
	}
	pw.ResponseWriter.WriteHeader(status)
}

func (pw *prefixWriter) Unwrap() http.ResponseWriter {
	return pw.ResponseWriter
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("module prefix cannot be empty")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix must start with /: %s", prefix)
	}
	if strings.Count(prefix, "/") != 1 {
		return fmt.Errorf("module prefix must be single-level: %s", prefix)
	}
	return nil
}
