package openapi

import (
	"os"
	"strings"
)

// Config describes the document info block and the advertised servers.
type Config struct {
	Title       string   `toml:"title"`
	Description string   `toml:"description"`
	Servers     []string `toml:"servers"`
}

// ConfigEnv maps environment variable names for document configuration.
// Servers is read as a comma-separated list.
type ConfigEnv struct {
	Title       string
	Description string
	Servers     string
}

func (c *Config) Finalize(env *ConfigEnv) error {
	if c.Title == "" {
		c.Title = "Scaffold"
	}
	if c.Description == "" {
		c.Description = "Routes derived from discovered controllers."
	}
	if env == nil {
		return nil
	}
	if v := lookup(env.Title); v != "" {
		c.Title = v
	}
	if v := lookup(env.Description); v != "" {
		c.Description = v
	}
	if v := lookup(env.Servers); v != "" {
		c.Servers = nil
		for s := range strings.SplitSeq(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				c.Servers = append(c.Servers, s)
			}
		}
	}
	return nil
}

func (c *Config) Merge(overlay *Config) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
	if len(overlay.Servers) > 0 {
		c.Servers = overlay.Servers
	}
}

func lookup(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}
