package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads the configuration file, overlays environment variables and
// validates the result. The file is CONFIG_PATH when set, otherwise the first
// of SearchPaths that exists; with no file only ENV and defaults apply.
func Load() (*Config, error) {
	var cfg Config

	path, err := configPath()
	if err != nil {
		return nil, err
	}

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// SearchPaths lists the implicit config file locations in lookup order:
// the working directory, then the per-user config directory.
func SearchPaths() []string {
	paths := []string{"./config.yaml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "recitation", "config.yaml"))
	}
	return paths
}

// configPath returns "" when no file is configured or found. An explicit
// CONFIG_PATH must exist.
func configPath() (string, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config: file %s: %w", path, err)
		}
		return path, nil
	}

	for _, path := range SearchPaths() {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}
