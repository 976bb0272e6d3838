package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/design-lab/pkg/middleware"
)

func TestSystem_Apply_Order(t *testing.T) {
	mw := middleware.New()
	var order []string

	for _, name := range []string{"outer", "inner"} {
		mw.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		})
	}

	handler := mw.Apply(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	want := []string{"outer", "inner", "handler"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestCORS(t *testing.T) {
	cfg := &middleware.CORSConfig{
		Enabled:          true,
		Origins:          []string{"http://portal.local"},
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           600,
	}

	tests := []struct {
		name        string
		enabled     bool
		method      string
		origin      string
		wantOrigin  string
		wantStatus  int
		wantHandled bool
	}{
		{"allowed origin", true, http.MethodGet, "http://portal.local", "http://portal.local", http.StatusTeapot, true},
		{"unknown origin", true, http.MethodGet, "http://evil.local", "", http.StatusTeapot, true},
		{"preflight", true, http.MethodOptions, "http://portal.local", "http://portal.local", http.StatusOK, false},
		{"disabled", false, http.MethodGet, "http://portal.local", "", http.StatusTeapot, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := *cfg
			c.Enabled = tt.enabled

			handled := false
			handler := middleware.CORS(&c)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handled = true
				w.WriteHeader(http.StatusTeapot)
			}))

			req := httptest.NewRequest(tt.method, "/data/notices", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if handled != tt.wantHandled {
				t.Errorf("handled = %v, want %v", handled, tt.wantHandled)
			}
			if tt.wantOrigin != "" {
				if got := w.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST" {
					t.Errorf("Allow-Methods = %q", got)
				}
				if got := w.Header().Get("Access-Control-Max-Age"); got != "600" {
					t.Errorf("Max-Age = %q", got)
				}
			}
		})
	}
}

func TestCORSConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_CORS_ENABLED", "true")
	t.Setenv("TEST_CORS_ORIGINS", "http://a.local, http://b.local")

	cfg := &middleware.CORSConfig{}
	err := cfg.Finalize(&middleware.CORSEnv{
		Enabled: "TEST_CORS_ENABLED",
		Origins: "TEST_CORS_ORIGINS",
	})
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if !cfg.Enabled {
		t.Error("Enabled = false, want true")
	}
	if len(cfg.Origins) != 2 || cfg.Origins[1] != "http://b.local" {
		t.Errorf("Origins = %v", cfg.Origins)
	}
	if len(cfg.AllowedMethods) == 0 || cfg.MaxAge <= 0 {
		t.Error("defaults not applied")
	}
}

func TestCORSConfig_Merge(t *testing.T) {
	base := middleware.CORSConfig{Origins: []string{"http://a.local"}, AllowedMethods: []string{"GET"}}
	base.Merge(&middleware.CORSConfig{Enabled: true})

	if !base.Enabled {
		t.Error("Enabled should follow overlay")
	}
	if len(base.Origins) != 1 || len(base.AllowedMethods) != 1 {
		t.Error("nil overlay slices should preserve base")
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := middleware.Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/data/posts?x=1", nil))

	out := buf.String()
	for _, want := range []string{"msg=request", "method=POST", "uri=\"/data/posts?x=1\"", "status=201"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestTrimSlash(t *testing.T) {
	handler := middleware.TrimSlash()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		path         string
		wantStatus   int
		wantLocation string
	}{
		{"/", http.StatusOK, ""},
		{"/data/notices", http.StatusOK, ""},
		{"/data/notices/", http.StatusMovedPermanently, "/data/notices"},
		{"/data/playbook/?category=all", http.StatusMovedPermanently, "/data/playbook?category=all"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if got := w.Header().Get("Location"); got != tt.wantLocation {
				t.Errorf("Location = %q, want %q", got, tt.wantLocation)
			}
		})
	}
}
