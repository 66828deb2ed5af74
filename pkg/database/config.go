package database

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Config contains database connection configuration.
type Config struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	Name            string `toml:"name"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime string `toml:"conn_max_lifetime"`
	ConnTimeout     string `toml:"conn_timeout"`
	SSLMode         string `toml:"sslmode"`
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// Env maps environment variable names for database configuration.
type Env struct {
	Host            string
	Port            string
	Name            string
	User            string
	Password        string
	MaxOpenConns    string
	MaxIdleConns    string
	ConnMaxLifetime string
	ConnTimeout     string
	SSLMode         string
	AutoMigrate     string
}

// ConnMaxLifetimeDuration parses and returns the connection max lifetime as a time.Duration.
func (c *Config) ConnMaxLifetimeDuration() time.Duration {
	d, _ := time.ParseDuration(c.ConnMaxLifetime)
	return d
}

// ConnTimeoutDuration parses and returns the connection timeout as a time.Duration.
func (c *Config) ConnTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ConnTimeout)
	return d
}

// Dsn returns the keyword/value connection string used by the pgx stdlib driver.
func (c *Config) Dsn() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		c.Host, c.Port, c.Name, c.User, c.Password, c.sslMode(),
	)
}

// URL returns the connection string in URL form with the given scheme,
// as expected by migration drivers.
func (c *Config) URL(scheme string) string {
	u := url.URL{
		Scheme:   scheme,
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": {c.sslMode()}}.Encode(),
	}
	return u.String()
}

func (c *Config) sslMode() string {
	if c.SSLMode == "" {
		return "disable"
	}
	return c.SSLMode
}

// Finalize applies defaults, loads environment overrides, and validates the database configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.Host != "" {
		c.Host = overlay.Host
	}
	if overlay.Port != 0 {
		c.Port = overlay.Port
	}
	if overlay.Name != "" {
		c.Name = overlay.Name
	}
	if overlay.User != "" {
		c.User = overlay.User
	}
	if overlay.Password != "" {
		c.Password = overlay.Password
	}
	if overlay.MaxOpenConns != 0 {
		c.MaxOpenConns = overlay.MaxOpenConns
	}
	if overlay.MaxIdleConns != 0 {
		c.MaxIdleConns = overlay.MaxIdleConns
	}
	if overlay.ConnMaxLifetime != "" {
		c.ConnMaxLifetime = overlay.ConnMaxLifetime
	}
	if overlay.ConnTimeout != "" {
		c.ConnTimeout = overlay.ConnTimeout
	}
	if overlay.SSLMode != "" {
		c.SSLMode = overlay.SSLMode
	}
	if overlay.AutoMigrate {
		c.AutoMigrate = true
	}
}

func (c *Config) loadDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 5432
	}
	if c.Name == "" {
		c.Name = "scaffold"
	}
	if c.User == "" {
		c.User = "scaffold"
	}
	if c.MaxOpenConns == 0 {
		c.MaxOpenConns = 25
	}
	if c.MaxIdleConns == 0 {
		c.MaxIdleConns = 5
	}
	if c.ConnMaxLifetime == "" {
		c.ConnMaxLifetime = "15m"
	}
	if c.ConnTimeout == "" {
		c.ConnTimeout = "5s"
	}
	if c.SSLMode == "" {
		c.SSLMode = "disable"
	}
}

func (c *Config) loadEnv(env *Env) {
	envString(env.Host, &c.Host)
	envInt(env.Port, &c.Port)
	envString(env.Name, &c.Name)
	envString(env.User, &c.User)
	envString(env.Password, &c.Password)
	envInt(env.MaxOpenConns, &c.MaxOpenConns)
	envInt(env.MaxIdleConns, &c.MaxIdleConns)
	envString(env.ConnMaxLifetime, &c.ConnMaxLifetime)
	envString(env.ConnTimeout, &c.ConnTimeout)
	envString(env.SSLMode, &c.SSLMode)
	envBool(env.AutoMigrate, &c.AutoMigrate)
}

func envString(name string, dst *string) {
	if name == "" {
		return
	}
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

func envInt(name string, dst *int) {
	if name == "" {
		return
	}
	if n, err := strconv.Atoi(os.Getenv(name)); err == nil {
		*dst = n
	}
}

func envBool(name string, dst *bool) {
	if name == "" {
		return
	}
	if b, err := strconv.ParseBool(os.Getenv(name)); err == nil {
		*dst = b
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid conn_max_lifetime: %w", err)
	}
	if _, err := time.ParseDuration(c.ConnTimeout); err != nil {
		return fmt.Errorf("invalid conn_timeout: %w", err)
	}
	switch c.SSLMode {
	case "disable", "allow", "prefer", "require", "verify-ca", "verify-full":
	default:
		return fmt.Errorf("invalid sslmode: %s", c.SSLMode)
	}
	return nil
}
