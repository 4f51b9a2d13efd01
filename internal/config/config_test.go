package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amonks/rtd/internal/config"
	"github.com/amonks/rtd/internal/testsupport"
)

func writeConfig(t *testing.T, homeDir, content string) {
	t.Helper()

	dir := filepath.Join(homeDir, ".config", "rtd")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	testsupport.SetupTestHome(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Store.Path != "" {
		t.Errorf("expected empty store path, got %q", cfg.Store.Path)
	}
	if cfg.Display.Color != config.DefaultColor {
		t.Errorf("Color = %q, expected %q", cfg.Display.Color, config.DefaultColor)
	}
	if cfg.Display.TimeFormat != config.DefaultTimeFormat {
		t.Errorf("TimeFormat = %q, expected %q", cfg.Display.TimeFormat, config.DefaultTimeFormat)
	}
	if cfg.Display.Width != config.DefaultWidth {
		t.Errorf("Width = %d, expected %d", cfg.Display.Width, config.DefaultWidth)
	}
	if cfg.Log.Level != config.DefaultLogLevel {
		t.Errorf("Level = %q, expected %q", cfg.Log.Level, config.DefaultLogLevel)
	}
}

func TestLoad_Full(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)

	writeConfig(t, homeDir, `
[store]
path = "~/tasks/todo.csv"

[display]
color = "NEVER"
time-format = "Jan 2 15:04"
width = 60

[log]
level = "debug"
`)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Store.Path != filepath.Join(homeDir, "tasks", "todo.csv") {
		t.Errorf("Path = %q, expected expanded home path", cfg.Store.Path)
	}
	if cfg.Display.Color != "never" {
		t.Errorf("Color = %q, expected %q", cfg.Display.Color, "never")
	}
	if cfg.Display.TimeFormat != "Jan 2 15:04" {
		t.Errorf("TimeFormat = %q", cfg.Display.TimeFormat)
	}
	if cfg.Display.Width != 60 {
		t.Errorf("Width = %d, expected 60", cfg.Display.Width)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q, expected debug", cfg.Log.Level)
	}
}

func TestLoad_BlankValuesUseDefaults(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)

	writeConfig(t, homeDir, `
[display]
time-format = "  "
width = 0
`)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Display.TimeFormat != config.DefaultTimeFormat {
		t.Errorf("TimeFormat = %q, expected default", cfg.Display.TimeFormat)
	}
	if cfg.Display.Width != config.DefaultWidth {
		t.Errorf("Width = %d, expected default", cfg.Display.Width)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)

	writeConfig(t, homeDir, `
[store]
path = "/from/config.csv"

[log]
level = "info"
`)
	t.Setenv(config.FileEnvVar, "/from/env.csv")
	t.Setenv(config.LogLevelEnvVar, "DEBUG")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Store.Path != "/from/env.csv" {
		t.Errorf("Path = %q, expected env override", cfg.Store.Path)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q, expected env override", cfg.Log.Level)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)

	writeConfig(t, homeDir, `this is not valid toml [`)

	if _, err := config.Load(); err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestLoad_UnknownKey(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)

	writeConfig(t, homeDir, `
[display]
colour = "never"
`)

	if _, err := config.Load(); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestLoadFile_ExplicitPath(t *testing.T) {
	testsupport.SetupTestHome(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("[display]\nwidth = 40\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Display.Width != 40 {
		t.Errorf("Width = %d, expected 40", cfg.Display.Width)
	}
}

func TestLoad_NoHomeUsesDefaults(t *testing.T) {
	testsupport.SetupTestHome(t)
	t.Setenv("HOME", "")
	t.Setenv("RTD_FILE", "/tmp/rtd-tasks.csv")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Store.Path != "/tmp/rtd-tasks.csv" {
		t.Errorf("Store.Path = %q, expected env override", cfg.Store.Path)
	}
	if cfg.Display.Width != config.DefaultWidth {
		t.Errorf("Width = %d, expected %d", cfg.Display.Width, config.DefaultWidth)
	}
}
