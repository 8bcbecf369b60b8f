package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
grpc_addr: ":50052"
http_addr: ":8081"
log_level: debug
max_concurrent: 10
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected log_level debug, got %s", cfg.LogLevel)
	}
	if cfg.MaxConcurrent != 10 {
		t.Fatalf("expected max_concurrent 10, got %d", cfg.MaxConcurrent)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := validateConfig(cfg); err != nil {
		t.Fatalf("default config must validate, got: %v", err)
	}
	if cfg.GRPCAddr != ":50052" {
		t.Fatalf("expected default gRPC port 50052, got %s", cfg.GRPCAddr)
	}
	if cfg.MaxConcurrent != 10 {
		t.Fatalf("expected default worker pool of 10, got %d", cfg.MaxConcurrent)
	}
}
