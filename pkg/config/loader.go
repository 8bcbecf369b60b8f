package config

import (
	"fmt"
	"os"
)

// LoadConfig loads and parses a configuration file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := ParseConfigYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// validateConfig performs validation on the configuration
func validateConfig(cfg *Config) error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", cfg.LogLevel)
	}

	if cfg.GRPCAddr == "" {
		return fmt.Errorf("grpc_addr cannot be empty")
	}
	if cfg.HTTPAddr == "" {
		return fmt.Errorf("http_addr cannot be empty")
	}
	if cfg.GRPCAddr == cfg.HTTPAddr {
		return fmt.Errorf("grpc_addr and http_addr must differ, both are %s", cfg.GRPCAddr)
	}

	if cfg.MaxConcurrent <= 0 {
		return fmt.Errorf("max_concurrent must be positive, got %d", cfg.MaxConcurrent)
	}

	return nil
}
