package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/JaimeStill/scaffold/internal/config"
	"github.com/JaimeStill/scaffold/pkg/logging"
)

const baseConfig = `
shutdown_timeout = "10s"

[server]
port = 8080

[database]
name = "scaffold"
user = "scaffold"

[app]
max_body_size = "1MB"
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, config.BaseConfigFile, baseConfig)

	cfg, err := config.LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.ShutdownTimeoutDuration() != 10*time.Second {
		t.Errorf("ShutdownTimeoutDuration() = %v, want 10s", cfg.ShutdownTimeoutDuration())
	}
	if cfg.App.MaxBodySizeBytes() != 1000*1000 {
		t.Errorf("MaxBodySizeBytes() = %d, want 1000000", cfg.App.MaxBodySizeBytes())
	}
	if cfg.App.MethodField != "_method" {
		t.Errorf("MethodField = %q, want _method", cfg.App.MethodField)
	}
	if cfg.Logging.Level != logging.LevelInfo {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Admin.Enabled() {
		t.Error("Admin.Enabled() = true without credentials")
	}
}

func TestLoadFrom_DefaultPort(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, config.BaseConfigFile, `
[database]
name = "scaffold"
user = "scaffold"
`)

	cfg, err := config.LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Server.Port != config.DefaultPort {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, config.DefaultPort)
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	cfg, err := config.LoadFrom(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Server.Port != config.DefaultPort {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, config.DefaultPort)
	}
	if cfg.Database.Name != "scaffold" || cfg.Database.User != "scaffold" {
		t.Errorf("Database name/user = %q/%q, want scaffold defaults", cfg.Database.Name, cfg.Database.User)
	}
}

func TestLoadFrom_Overlay(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, config.BaseConfigFile, baseConfig)
	writeFile(t, dir, "config.test.toml", `
[server]
port = 9090

[admin]
user = "root"
password = "secret"
`)
	t.Setenv(config.EnvServiceEnv, "test")

	cfg, err := config.LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Name != "scaffold" {
		t.Errorf("Database.Name = %q, want scaffold", cfg.Database.Name)
	}
	if !cfg.Admin.Enabled() {
		t.Error("Admin.Enabled() = false, want true from overlay")
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, config.BaseConfigFile, baseConfig)
	t.Setenv(config.EnvServerPort, "4000")
	t.Setenv("DATABASE_NAME", "other")
	t.Setenv(config.EnvAppControllersDir, "/srv/controllers")

	cfg, err := config.LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Server.Port != 4000 {
		t.Errorf("Server.Port = %d, want 4000", cfg.Server.Port)
	}
	if cfg.Database.Name != "other" {
		t.Errorf("Database.Name = %q, want other", cfg.Database.Name)
	}
	if cfg.App.ControllersDir != "/srv/controllers" {
		t.Errorf("App.ControllersDir = %q, want /srv/controllers", cfg.App.ControllersDir)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	const db = "[database]\nname = \"scaffold\"\nuser = \"scaffold\"\n"

	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", "[server\nport = 1"},
		{"bad sslmode", "[database]\nsslmode = \"sometimes\"\n"},
		{"bad body size", db + "[app]\nmax_body_size = \"lots\"\n"},
		{"admin without password", db + "[admin]\nuser = \"root\"\n"},
		{"bad shutdown timeout", "shutdown_timeout = \"soon\"\n" + db},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, config.BaseConfigFile, tt.content)

			if _, err := config.LoadFrom(dir); err == nil {
				t.Error("LoadFrom() error = nil, want error")
			}
		})
	}
}
