package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 8080 || cfg.SpawnInterval != 100 || cfg.FrameMS != 30 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.FrameInterval() != 30*time.Millisecond {
		t.Fatalf("frame interval = %v", cfg.FrameInterval())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MAGOG_SEED", "42")
	t.Setenv("MAGOG_PORT", "9000")
	t.Setenv("MAGOG_DB", "/tmp/x.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ResolveSeed() != 42 || cfg.Port != 9000 || cfg.DBPath() != "/tmp/x.db" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("not a number", func(t *testing.T) {
		t.Setenv("MAGOG_PORT", "http")
		_, err := Load()
		if err == nil || !strings.Contains(err.Error(), "parse env:") {
			t.Fatalf("expected parse env error, got %v", err)
		}
	})
	t.Run("bad port", func(t *testing.T) {
		t.Setenv("MAGOG_PORT", "70000")
		if _, err := Load(); err == nil {
			t.Fatal("expected validation error")
		}
	})
}

func TestDBPathExpandsHome(t *testing.T) {
	t.Setenv("HOME", "/home/test")
	cfg := Config{DB: "~/.magog/saves.db"}
	if got := cfg.DBPath(); got != filepath.Join("/home/test", ".magog", "saves.db") {
		t.Fatalf("DBPath() = %q", got)
	}
}
