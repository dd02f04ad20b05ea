package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// chdir is t.Chdir for toolchains before Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("chdir back: %v", err)
		}
	})
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONFIG_ENV", "test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8080 {
		t.Fatalf("port = %d, want 8080", cfg.Port)
	}
	if cfg.PingPeriod != 54*time.Second {
		t.Fatalf("ping_period = %v, want 54s", cfg.PingPeriod)
	}
	if cfg.SendBuffer != 32 || cfg.ReadLimit != 32768 {
		t.Fatalf("buffer knobs = %d/%d", cfg.SendBuffer, cfg.ReadLimit)
	}
	if len(cfg.StunURLs) != 1 {
		t.Fatalf("stun_urls = %v", cfg.StunURLs)
	}
}

func TestLoad_ReadsEnvSelectedFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("CONFIG_ENV", "test")

	if err := os.MkdirAll(filepath.Join(dir, "config"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	yaml := []byte("mode: debug\nport: 9001\nconn_rate_limit: 2\nturn_url: turn:t.example.org:3478\n")
	if err := os.WriteFile(filepath.Join(dir, "config", "config.test.yaml"), yaml, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mode != "debug" || cfg.Port != 9001 {
		t.Fatalf("cfg = %s/%d, want debug/9001", cfg.Mode, cfg.Port)
	}
	if cfg.ConnRateLimit != 2 {
		t.Fatalf("conn_rate_limit = %d, want 2", cfg.ConnRateLimit)
	}
	if cfg.TurnURL != "turn:t.example.org:3478" {
		t.Fatalf("turn_url = %q", cfg.TurnURL)
	}
	// Untouched knobs keep their defaults.
	if cfg.ConnRateWindow != 10*time.Second {
		t.Fatalf("conn_rate_window = %v, want default 10s", cfg.ConnRateWindow)
	}
}
