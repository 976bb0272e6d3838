package config

import (
	"fmt"
	"os"

	"github.com/docker/go-units"
)

const (
	EnvContentMaxPostSize = "CONTENT_MAX_POST_SIZE"
)

// ContentConfig bounds user-submitted content.
type ContentConfig struct {
	// MaxPostSize caps the request body of a new post. Accepts human sizes such as "2MB".
	MaxPostSize    string `toml:"max_post_size"`
	maxPostSizeVal int64
}

// MaxPostSizeBytes returns the parsed MaxPostSize. Valid after Finalize.
func (c *ContentConfig) MaxPostSizeBytes() int64 {
	return c.maxPostSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the content configuration.
func (c *ContentConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *ContentConfig) Merge(overlay *ContentConfig) {
	if size, err := units.FromHumanSize(overlay.MaxPostSize); err == nil {
		c.MaxPostSize = overlay.MaxPostSize
		c.maxPostSizeVal = size
	}
}

func (c *ContentConfig) loadDefaults() {
	if c.MaxPostSize == "" {
		c.MaxPostSize = "2MB"
	}
}

func (c *ContentConfig) loadEnv() {
	if v := os.Getenv(EnvContentMaxPostSize); v != "" {
		c.MaxPostSize = v
	}
}

func (c *ContentConfig) validate() error {
	size, err := units.FromHumanSize(c.MaxPostSize)
	if err != nil {
		return fmt.Errorf("invalid max_post_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_post_size must be positive")
	}
	c.maxPostSizeVal = size
	return nil
}
