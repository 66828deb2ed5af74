package config

import (
	"fmt"
	"os"
)

const (
	EnvAdminUser     = "ADMIN_USER"
	EnvAdminPassword = "ADMIN_PASSWORD"
	EnvAdminRealm    = "ADMIN_REALM"
)

// AdminConfig holds optional basic auth credentials for the admin routes.
// Authentication is disabled when User is empty.
type AdminConfig struct {
	User     string `toml:"user"`
	Password string `toml:"password"`
	Realm    string `toml:"realm"`
}

// Enabled reports whether admin routes require authentication.
func (c *AdminConfig) Enabled() bool {
	return c.User != ""
}

// Finalize applies defaults, loads environment overrides, and validates the admin configuration.
func (c *AdminConfig) Finalize() error {
	if c.Realm == "" {
		c.Realm = "admin"
	}
	if v := os.Getenv(EnvAdminUser); v != "" {
		c.User = v
	}
	if v := os.Getenv(EnvAdminPassword); v != "" {
		c.Password = v
	}
	if v := os.Getenv(EnvAdminRealm); v != "" {
		c.Realm = v
	}

	if c.Enabled() && c.Password == "" {
		return fmt.Errorf("password required when user is set")
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AdminConfig) Merge(overlay *AdminConfig) {
	if overlay.User != "" {
		c.User = overlay.User
	}
	if overlay.Password != "" {
		c.Password = overlay.Password
	}
	if overlay.Realm != "" {
		c.Realm = overlay.Realm
	}
}
