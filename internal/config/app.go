package config

import (
	"fmt"
	"os"

	"github.com/docker/go-units"
)

const (
	EnvAppControllersDir = "APP_CONTROLLERS_DIR"
	EnvAppViewsDir       = "APP_VIEWS_DIR"
	EnvAppBasePath       = "APP_BASE_PATH"
	EnvAppMaxBodySize    = "APP_MAX_BODY_SIZE"
	EnvAppMethodField    = "APP_METHOD_FIELD"
)

// AppConfig contains controller discovery and request handling configuration.
type AppConfig struct {
	// ControllersDir replaces the embedded controller manifests when set.
	ControllersDir string `toml:"controllers_dir"`
	// ViewsDir replaces the embedded view templates when set.
	ViewsDir       string `toml:"views_dir"`
	BasePath       string `toml:"base_path"`
	MaxBodySize    string `toml:"max_body_size"`
	MethodField    string `toml:"method_field"`
	maxBodySizeVal int64
}

// MaxBodySizeBytes returns the validated body limit.
func (c *AppConfig) MaxBodySizeBytes() int64 {
	return c.maxBodySizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the app configuration.
func (c *AppConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AppConfig) Merge(overlay *AppConfig) {
	if overlay.ControllersDir != "" {
		c.ControllersDir = overlay.ControllersDir
	}
	if overlay.ViewsDir != "" {
		c.ViewsDir = overlay.ViewsDir
	}
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MethodField != "" {
		c.MethodField = overlay.MethodField
	}
	if size, err := units.FromHumanSize(overlay.MaxBodySize); err == nil {
		c.MaxBodySize = overlay.MaxBodySize
		c.maxBodySizeVal = size
	}
}

func (c *AppConfig) loadDefaults() {
	if c.MaxBodySize == "" {
		c.MaxBodySize = "2MB"
	}
	if c.MethodField == "" {
		c.MethodField = "_method"
	}
}

func (c *AppConfig) loadEnv() {
	if v := os.Getenv(EnvAppControllersDir); v != "" {
		c.ControllersDir = v
	}
	if v := os.Getenv(EnvAppViewsDir); v != "" {
		c.ViewsDir = v
	}
	if v := os.Getenv(EnvAppBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAppMaxBodySize); v != "" {
		c.MaxBodySize = v
	}
	if v := os.Getenv(EnvAppMethodField); v != "" {
		c.MethodField = v
	}
}

func (c *AppConfig) validate() error {
	size, err := units.FromHumanSize(c.MaxBodySize)
	if err != nil {
		return fmt.Errorf("invalid max_body_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_body_size must be positive")
	}
	c.maxBodySizeVal = size
	return nil
}
