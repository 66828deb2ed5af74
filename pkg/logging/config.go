package logging

import (
	"os"
	"strconv"
)

// Env maps environment variable names for logging configuration.
type Env struct {
	Level  string
	Format string
	Source string
}

// Config holds logging configuration settings. Source adds the calling
// file and line to every record.
type Config struct {
	Level  Level  `toml:"level"`
	Format Format `toml:"format"`
	Source bool   `toml:"source"`
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize(env *Env) error {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}
	if env != nil {
		if v := os.Getenv(env.Level); env.Level != "" && v != "" {
			c.Level = Level(v)
		}
		if v := os.Getenv(env.Format); env.Format != "" && v != "" {
			c.Format = Format(v)
		}
		if v := os.Getenv(env.Source); env.Source != "" && v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				c.Source = b
			}
		}
	}
	if err := c.Level.Validate(); err != nil {
		return err
	}
	return c.Format.Validate()
}

func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
	if overlay.Source {
		c.Source = true
	}
}
