package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/JaimeStill/design-lab/internal/config"
)

const testSecret = "test-session-secret-0123456789"

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadFrom_RepositoryConfig(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")

	cfg, err := config.LoadFrom("../..")
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}

	if cfg.Database.Enabled {
		t.Error("Database.Enabled = true, want false for local development")
	}
	if !cfg.Session.DevLogin {
		t.Error("Session.DevLogin = false, want true")
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("API.BasePath = %q, want /api", cfg.API.BasePath)
	}
	if cfg.API.AccessLogs.MaxPageSize != 100 {
		t.Errorf("AccessLogs.MaxPageSize = %d, want 100", cfg.API.AccessLogs.MaxPageSize)
	}
}

func TestLoadFrom_Defaults(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")
	t.Setenv("SESSION_SECRET", testSecret)

	cfg, err := config.LoadFrom(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"server addr", cfg.Server.Addr(), "0.0.0.0:8080"},
		{"base path", cfg.API.BasePath, "/api"},
		{"shutdown timeout", cfg.ShutdownTimeoutDuration(), 30 * time.Second},
		{"cookie name", cfg.Session.CookieName, "session_user"},
		{"session max age", cfg.Session.MaxAgeDuration(), 8 * time.Hour},
		{"operator email", cfg.Session.OperatorEmail, "2501034@hdec.co.kr"},
		{"access log page size", cfg.API.AccessLogs.DefaultPageSize, 50},
		{"max post size", cfg.Content.MaxPostSizeBytes(), int64(2_000_000)},
		{"secure cookies", cfg.Session.Secure, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestLoadFrom_MissingSecret(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")
	t.Setenv("SESSION_SECRET", "")

	if _, err := config.LoadFrom(t.TempDir()); err == nil {
		t.Error("LoadFrom() succeeded without a session secret, want error")
	}
}

func TestLoadFrom_ProductionOverlay(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, config.BaseConfigFile, `
shutdown_timeout = "30s"

[server]
port = 8080

[session]
secret = "`+testSecret+`"
dev_login = true
`)
	writeFile(t, dir, "config.production.toml", `
shutdown_timeout = "60s"

[server]
port = 9090

[session]
operators = ["lead@company.com"]
`)
	t.Setenv(config.EnvServiceEnv, config.Production)

	cfg, err := config.LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}

	if !cfg.IsProduction() {
		t.Error("IsProduction() = false")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.ShutdownTimeout != "60s" {
		t.Errorf("ShutdownTimeout = %q, want 60s", cfg.ShutdownTimeout)
	}
	if !cfg.Session.Secure {
		t.Error("Session.Secure = false in production")
	}
	if cfg.Session.DevLogin {
		t.Error("Session.DevLogin survived an overlay that omits it")
	}
	if len(cfg.Session.Operators) != 1 || cfg.Session.Operators[0] != "lead@company.com" {
		t.Errorf("Session.Operators = %v", cfg.Session.Operators)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")
	t.Setenv("SESSION_SECRET", testSecret)
	t.Setenv("SERVER_PORT", "3001")
	t.Setenv("API_BASE_PATH", "/v1")
	t.Setenv("CONTENT_MAX_POST_SIZE", "5MB")
	t.Setenv("SESSION_OPERATORS", "a@company.com,b@company.com")
	t.Setenv("SESSION_DEV_LOGIN", "true")
	t.Setenv("SESSION_TRUST_PROXY", "true")
	t.Setenv(config.EnvServiceDomain, "https://lab.example.com")

	cfg, err := config.LoadFrom(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}

	if cfg.Server.Port != 3001 {
		t.Errorf("Server.Port = %d, want 3001", cfg.Server.Port)
	}
	if cfg.API.BasePath != "/v1" {
		t.Errorf("API.BasePath = %q, want /v1", cfg.API.BasePath)
	}
	if cfg.Content.MaxPostSizeBytes() != 5_000_000 {
		t.Errorf("MaxPostSizeBytes() = %d, want 5000000", cfg.Content.MaxPostSizeBytes())
	}
	if len(cfg.Session.Operators) != 2 {
		t.Errorf("Session.Operators = %v, want 2 entries", cfg.Session.Operators)
	}
	if !cfg.Session.DevLogin {
		t.Error("Session.DevLogin = false, want true")
	}
	if !cfg.Session.TrustProxy {
		t.Error("Session.TrustProxy = false, want true")
	}
	if cfg.Domain != "https://lab.example.com" {
		t.Errorf("Domain = %q", cfg.Domain)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"shutdown timeout", map[string]string{config.EnvServiceShutdownTimeout: "soon"}},
		{"post size", map[string]string{"CONTENT_MAX_POST_SIZE": "huge"}},
		{"short secret", map[string]string{"SESSION_SECRET": "short"}},
		{"session max age", map[string]string{"SESSION_MAX_AGE": "-1h"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(config.EnvServiceEnv, "")
			t.Setenv("SESSION_SECRET", testSecret)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if _, err := config.LoadFrom(t.TempDir()); err == nil {
				t.Error("LoadFrom() succeeded, want error")
			}
		})
	}
}

func TestLoadFrom_MalformedFile(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")
	dir := t.TempDir()
	writeFile(t, dir, config.BaseConfigFile, "[server\nport = ")

	if _, err := config.LoadFrom(dir); err == nil {
		t.Error("LoadFrom() succeeded on malformed TOML, want error")
	}
}

func TestContentConfig_Merge(t *testing.T) {
	base := config.ContentConfig{MaxPostSize: "2MB"}
	base.Merge(&config.ContentConfig{MaxPostSize: "10MB"})
	if base.MaxPostSize != "10MB" {
		t.Errorf("MaxPostSize = %q, want 10MB", base.MaxPostSize)
	}

	base.Merge(&config.ContentConfig{})
	if base.MaxPostSize != "10MB" {
		t.Errorf("empty overlay changed MaxPostSize to %q", base.MaxPostSize)
	}
}

func TestServerConfig_Merge(t *testing.T) {
	base := &config.ServerConfig{Host: "localhost", Port: 8080, ReadTimeout: "30s"}
	base.Merge(&config.ServerConfig{Port: 9090})

	if base.Host != "localhost" || base.Port != 9090 || base.ReadTimeout != "30s" {
		t.Errorf("merged = %+v", base)
	}
}
