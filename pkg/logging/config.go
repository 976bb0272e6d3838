package logging

import (
	"os"
	"strconv"
)

// DefaultService names the service in every log record unless overridden.
const DefaultService = "design-lab"

// Env maps environment variable names for logging configuration.
type Env struct {
	Level     string
	Format    string
	Service   string
	AddSource string
}

// Config is the [logging] section.
type Config struct {
	Level     Level  `toml:"level"`
	Format    Format `toml:"format"`
	Service   string `toml:"service"`
	AddSource bool   `toml:"add_source"`
}

// Finalize applies defaults, environment overrides and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
	if overlay.Service != "" {
		c.Service = overlay.Service
	}
	if overlay.AddSource {
		c.AddSource = true
	}
}

func (c *Config) loadDefaults() {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}
	if c.Service == "" {
		c.Service = DefaultService
	}
}

func (c *Config) loadEnv(env *Env) {
	if v := getenv(env.Level); v != "" {
		c.Level = Level(v)
	}
	if v := getenv(env.Format); v != "" {
		c.Format = Format(v)
	}
	if v := getenv(env.Service); v != "" {
		c.Service = v
	}
	if v := getenv(env.AddSource); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.AddSource = b
		}
	}
}

func (c *Config) validate() error {
	if err := c.Level.Validate(); err != nil {
		return err
	}
	return c.Format.Validate()
}

func getenv(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}
