package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "circuit.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Run.Batch != 5 || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.Colors.Green.Contains(526) || cfg.Colors.Green.Contains(606) {
		t.Fatal("green band must be [526, 606)")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "debug"

[run]
batch = 2
output_dir = "out"
color = true

[colors.red]
min = 100
max = 200
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Fatalf("logging = %+v", cfg.Logging)
	}
	if cfg.Run.Batch != 2 || cfg.Run.OutputDir != "out" || !cfg.Run.Color || cfg.Run.TPS != 8 {
		t.Fatalf("run = %+v", cfg.Run)
	}
	if cfg.Colors.Red != (Band{Min: 100, Max: 200}) || cfg.Colors.Blue.Min != 630 {
		t.Fatalf("colors = %+v", cfg.Colors)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("missing file accepted")
	}
	if _, err := Load(writeConfig(t, "[run\nbatch = 1")); err == nil {
		t.Fatal("malformed TOML accepted")
	}
	if _, err := Load(writeConfig(t, "[run]\nbatch = -1\n")); err == nil {
		t.Fatal("negative batch accepted")
	}
	if _, err := Load(writeConfig(t, "[colors.blue]\nmin = 700\nmax = 600\n")); err == nil {
		t.Fatal("inverted band accepted")
	}
}
