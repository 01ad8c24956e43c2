package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/opencode-ai/catppuccin"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Flavor != catppuccin.FlavorMocha {
		t.Errorf("expected default flavor mocha, got %s", cfg.Flavor)
	}
	if cfg.NoBackground {
		t.Error("expected background enabled by default")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", cfg.LogLevel)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := "flavor = \"latte\"\nno-background = true\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Flavor != catppuccin.FlavorLatte {
		t.Errorf("expected latte from file, got %s", cfg.Flavor)
	}
	if !cfg.NoBackground {
		t.Error("expected no-background from file")
	}
}

func TestLoadSearchPath(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir := filepath.Join(xdg, "catppuccin")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("flavor = \"frappe\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Flavor != catppuccin.FlavorFrappe {
		t.Errorf("expected frappe from search path, got %s", cfg.Flavor)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CATPPUCCIN_FLAVOR", "macchiato")
	t.Setenv("CATPPUCCIN_NO_BACKGROUND", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Flavor != catppuccin.FlavorMacchiato {
		t.Errorf("expected env flavor macchiato, got %s", cfg.Flavor)
	}
	if !cfg.NoBackground {
		t.Error("expected env no-background override")
	}
}

func TestLoadRejectsUnknownFlavor(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CATPPUCCIN_FLAVOR", "americano")

	if _, err := Load(""); err == nil {
		t.Fatal("expected error for unknown flavor")
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}
