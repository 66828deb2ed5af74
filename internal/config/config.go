// Package config provides application configuration management with support for
// TOML files, environment variable overrides, and configuration overlays.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/scaffold/pkg/database"
	"github.com/JaimeStill/scaffold/pkg/logging"
	"github.com/JaimeStill/scaffold/pkg/middleware"
	"github.com/JaimeStill/scaffold/pkg/openapi"
	"github.com/JaimeStill/scaffold/pkg/pagination"
)

const (
	// BaseConfigFile is the primary configuration file name.
	BaseConfigFile = "config.toml"

	// OverlayConfigPattern is the file name pattern for environment-specific overlays.
	OverlayConfigPattern = "config.%s.toml"

	// EnvServiceEnv specifies the environment name for configuration overlays.
	EnvServiceEnv = "SERVICE_ENV"

	// EnvServiceShutdownTimeout overrides the service shutdown timeout.
	EnvServiceShutdownTimeout = "SERVICE_SHUTDOWN_TIMEOUT"

	// EnvServiceVersion overrides the reported service version.
	EnvServiceVersion = "SERVICE_VERSION"
)

// Config represents the root service configuration.
type Config struct {
	Server          ServerConfig          `toml:"server"`
	Database        database.Config       `toml:"database"`
	Logging         logging.Config        `toml:"logging"`
	CORS            middleware.CORSConfig `toml:"cors"`
	App             AppConfig             `toml:"app"`
	Admin           AdminConfig           `toml:"admin"`
	Pagination      pagination.Config     `toml:"pagination"`
	OpenAPI         openapi.Config        `toml:"openapi"`
	ShutdownTimeout string                `toml:"shutdown_timeout"`
	Version         string                `toml:"version"`
}

// Env returns the active overlay environment name.
func (c *Config) Env() string {
	return os.Getenv(EnvServiceEnv)
}

// ShutdownTimeoutDuration parses and returns the shutdown timeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads config.toml from the working directory, applies any overlay, and finalizes.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom reads the base file and environment overlay from dir and finalizes the result.
// A missing base file yields a configuration built from defaults and environment variables.
func LoadFrom(dir string) (*Config, error) {
	cfg, err := load(filepath.Join(dir, BaseConfigFile))
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	if path := overlayPath(dir); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Logging.Finalize(loggingEnv); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.App.Finalize(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if err := c.Admin.Finalize(); err != nil {
		return fmt.Errorf("admin: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	if err := c.OpenAPI.Finalize(openAPIEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.Logging.Merge(&overlay.Logging)
	c.CORS.Merge(&overlay.CORS)
	c.App.Merge(&overlay.App)
	c.Admin.Merge(&overlay.Admin)
	c.Pagination.Merge(&overlay.Pagination)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvServiceShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvServiceVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath(dir string) string {
	if env := os.Getenv(EnvServiceEnv); env != "" {
		path := filepath.Join(dir, fmt.Sprintf(OverlayConfigPattern, env))
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
