package auth

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// FixedOperatorEmail always resolves to the operator role.
const FixedOperatorEmail = "2501034@hdec.co.kr"

// Config holds session cookie and role allowlist settings.
type Config struct {
	CookieName    string   `toml:"cookie_name"`
	Secret        string   `toml:"secret"`
	MaxAge        string   `toml:"max_age"`
	Secure        bool     `toml:"secure"`
	DevLogin      bool     `toml:"dev_login"`
	TrustProxy    bool     `toml:"trust_proxy"`
	OperatorEmail string   `toml:"operator_email"`
	Operators     []string `toml:"operators"`
	Community     []string `toml:"community"`
}

// Env maps environment variable names for session configuration.
type Env struct {
	CookieName    string
	Secret        string
	MaxAge        string
	DevLogin      string
	TrustProxy    string
	OperatorEmail string
	Operators     string
	Community     string
}

// MaxAgeDuration parses and returns the session lifetime.
func (c *Config) MaxAgeDuration() time.Duration {
	d, _ := time.ParseDuration(c.MaxAge)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.CookieName != "" {
		c.CookieName = overlay.CookieName
	}
	if overlay.Secret != "" {
		c.Secret = overlay.Secret
	}
	if overlay.MaxAge != "" {
		c.MaxAge = overlay.MaxAge
	}
	if overlay.Secure {
		c.Secure = true
	}
	c.DevLogin = overlay.DevLogin
	if overlay.TrustProxy {
		c.TrustProxy = true
	}
	if overlay.OperatorEmail != "" {
		c.OperatorEmail = overlay.OperatorEmail
	}
	if overlay.Operators != nil {
		c.Operators = overlay.Operators
	}
	if overlay.Community != nil {
		c.Community = overlay.Community
	}
}

func (c *Config) loadDefaults() {
	if c.CookieName == "" {
		c.CookieName = "session_user"
	}
	if c.MaxAge == "" {
		c.MaxAge = "8h"
	}
	if c.OperatorEmail == "" {
		c.OperatorEmail = FixedOperatorEmail
	}
}

func (c *Config) loadEnv(env *Env) {
	if v := lookup(env.CookieName); v != "" {
		c.CookieName = v
	}
	if v := lookup(env.Secret); v != "" {
		c.Secret = v
	}
	if v := lookup(env.MaxAge); v != "" {
		c.MaxAge = v
	}
	if v := lookup(env.DevLogin); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.DevLogin = enabled
		}
	}
	if v := lookup(env.TrustProxy); v != "" {
		if trusted, err := strconv.ParseBool(v); err == nil {
			c.TrustProxy = trusted
		}
	}
	if v := lookup(env.OperatorEmail); v != "" {
		c.OperatorEmail = v
	}
	if v := lookup(env.Operators); v != "" {
		c.Operators = strings.Split(v, ",")
	}
	if v := lookup(env.Community); v != "" {
		c.Community = strings.Split(v, ",")
	}
}

func (c *Config) validate() error {
	if c.Secret == "" {
		return fmt.Errorf("secret required")
	}
	if len(c.Secret) < 16 {
		return fmt.Errorf("secret must be at least 16 bytes")
	}
	d, err := time.ParseDuration(c.MaxAge)
	if err != nil {
		return fmt.Errorf("invalid max_age: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("max_age must be positive")
	}
	return nil
}

func lookup(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}
