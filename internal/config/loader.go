package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads the server configuration from a YAML file and environment
// variables. Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path is determined by CONFIG_PATH env (fallback "./config.yaml").
// If the file does not exist and CONFIG_PATH was not set explicitly,
// configuration is loaded from ENV + defaults only.
func Load() (*Config, error) {
	var cfg Config
	if err := read(os.Getenv("CONFIG_PATH"), "./config.yaml", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// LoadClient reads the CLI configuration. The file is taken from path, then
// FLIGHTLOG_CONFIG, then the user config directory.
func LoadClient(path string) (*ClientConfig, error) {
	var cfg ClientConfig
	if path == "" {
		path = os.Getenv("FLIGHTLOG_CONFIG")
	}
	if err := read(path, filepath.Join(userConfigDir(), "config.yaml"), &cfg); err != nil {
		return nil, err
	}
	if cfg.TokenFile == "" {
		cfg.TokenFile = filepath.Join(userConfigDir(), "token")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func read(path, fallback string, cfg any) error {
	explicitPath := path != ""
	if !explicitPath {
		path = fallback
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return fmt.Errorf("config: file %s: %w", path, err)
	} else {
		// No file, load from ENV + defaults only.
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}
	return nil
}

func userConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".flightlog"
	}
	return filepath.Join(dir, "flightlog")
}
