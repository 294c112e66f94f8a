package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	errs "github.com/heliosviz/graphkit/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.OverlapThreshold != 20 {
		t.Errorf("OverlapThreshold = %v, want 20", cfg.OverlapThreshold)
	}
	if cfg.DefaultK != 2 {
		t.Errorf("DefaultK = %d, want 2", cfg.DefaultK)
	}
	if !cfg.Cache.Enabled {
		t.Error("cache should be enabled by default")
	}
	if cfg.Cache.TTL.Std() != 7*24*time.Hour {
		t.Errorf("TTL = %v", cfg.Cache.TTL.Std())
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
workers = 3
default_k = 5
metrics_file = "/tmp/g.prom"

[cache]
enabled = false
ttl = "90m"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workers != 3 || cfg.DefaultK != 5 {
		t.Errorf("Workers=%d DefaultK=%d", cfg.Workers, cfg.DefaultK)
	}
	if cfg.OverlapThreshold != 20 {
		t.Errorf("absent key should keep default, got %v", cfg.OverlapThreshold)
	}
	if cfg.MetricsFile != "/tmp/g.prom" {
		t.Errorf("MetricsFile = %q", cfg.MetricsFile)
	}
	if cfg.Cache.Enabled {
		t.Error("cache.enabled = false was ignored")
	}
	if cfg.Cache.TTL.Std() != 90*time.Minute {
		t.Errorf("TTL = %v, want 90m", cfg.Cache.TTL.Std())
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if cfg != Default() {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"bad toml", "workers = [", ""},
		{"bad duration", "[cache]\nttl = \"soon\"", ""},
		{"unknown key", "wrokers = 2", "wrokers"},
		{"zero workers", "workers = 0", "workers must be at least 1"},
		{"negative threshold", "overlap_threshold = -1.0", "overlap_threshold must be greater than 0"},
		{"zero k", "default_k = 0", "default_k must be at least 1"},
		{"negative ttl", "[cache]\nttl = \"-1h\"", "cache.ttl must be at least 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errs.Is(err, errs.ErrCodeInvalidConfig) {
				t.Errorf("code = %v, want INVALID_CONFIG", errs.GetCode(err))
			}
			if tt.wantMsg != "" && !strings.Contains(strings.ToLower(err.Error()), tt.wantMsg) {
				t.Errorf("error %q should mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	path, err := Path()
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join("/xdg", AppName, "config.toml") {
		t.Errorf("Path() = %q", path)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	path, err = Path()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, filepath.Join(".config", AppName, "config.toml")) {
		t.Errorf("Path() = %q, want ~/.config fallback", path)
	}
}
