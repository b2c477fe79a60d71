package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if cfg.Spacing != 0.005 {
		t.Errorf("expected spacing 0.005, got %g", cfg.Spacing)
	}
	if cfg.PreviewSize != 1024 {
		t.Errorf("expected preview size 1024, got %d", cfg.PreviewSize)
	}
	if cfg.Supersample != 4 {
		t.Errorf("expected supersample 4, got %d", cfg.Supersample)
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("expected %d workers, got %d", runtime.NumCPU(), cfg.Workers)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected log level info, got %q", cfg.LogLevel)
	}
	if cfg.Preview {
		t.Error("expected preview to be off by default")
	}
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	cfg := Config{
		InputDir:  "/from/file",
		OutputDir: "/from/file/out",
		Spacing:   0.01,
		Workers:   2,
	}
	cfg.Resolve(Flags{
		InputDir: "/from/flag",
		Spacing:  0.02,
		Workers:  8,
		Preview:  true,
	})

	if cfg.InputDir != "/from/flag" {
		t.Errorf("expected flag to win, got %q", cfg.InputDir)
	}
	if cfg.OutputDir != "/from/file/out" {
		t.Errorf("unset flag must not clobber file value, got %q", cfg.OutputDir)
	}
	if cfg.Spacing != 0.02 {
		t.Errorf("expected spacing 0.02, got %g", cfg.Spacing)
	}
	if cfg.Workers != 8 {
		t.Errorf("expected 8 workers, got %d", cfg.Workers)
	}
	if !cfg.Preview {
		t.Error("expected preview enabled by flag")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"input_dir": "meshes", "output_dir": "out", "spacing": 0.01, "workers": 3}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.InputDir != "meshes" || cfg.OutputDir != "out" {
		t.Errorf("paths not loaded: %+v", cfg)
	}
	if cfg.Spacing != 0.01 || cfg.Workers != 3 {
		t.Errorf("settings not loaded: %+v", cfg)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{InputDir: "in", OutputDir: "out", Spacing: 0.005}
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	bad := []Config{
		{OutputDir: "out", Spacing: 0.005},
		{InputDir: "in", Spacing: 0.005},
		{InputDir: "in", OutputDir: "out", Spacing: 0},
		{InputDir: "in", OutputDir: "out", Spacing: -1},
	}
	for i, c := range bad {
		if err := c.Validate(); err == nil {
			t.Errorf("case %d: expected a validation error for %+v", i, c)
		}
	}
}
