package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig configures the serve command. Flags win over the config
// file; the file wins over these defaults.
type ServerConfig struct {
	Addr     string `yaml:"addr"`
	LogLevel string `yaml:"logLevel"`
	Size     int    `yaml:"size"`
	Blanks   int    `yaml:"blanks"`
}

// DefaultServerConfig returns the built-in server settings.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:     ":8080",
		LogLevel: "info",
		Size:     5,
		Blanks:   10,
	}
}

// LoadServerConfig reads a YAML config file over the defaults. An empty
// path returns the defaults unchanged.
func LoadServerConfig(path string) (ServerConfig, error) {
	cfg := DefaultServerConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Size < 1 {
		return cfg, fmt.Errorf("config size must be positive, got %d", cfg.Size)
	}
	return cfg, nil
}
