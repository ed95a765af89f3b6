package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath     = "configs/aoc.yaml"
	DefaultInputDir = "inputs"
	DefaultLogLevel = "info"
)

// Load reads the configuration from AOC_CONFIG_PATH, falling back to
// DefaultPath. A missing file at the default path yields the defaults.
func Load() (*Config, error) {
	path := os.Getenv("AOC_CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("AOC_INPUT_DIR"); dir != "" {
		c.InputDir = dir
	}
	if level := os.Getenv("AOC_LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
}

func applyDefaults(cfg *Config) {
	if cfg.InputDir == "" {
		cfg.InputDir = DefaultInputDir
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.Answers == nil {
		cfg.Answers = Answers{}
	}
}

func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}

	for year, days := range c.Answers {
		if year < 2015 {
			return fmt.Errorf("answers: invalid year %d", year)
		}
		for day := range days {
			if day < 1 || day > 25 {
				return fmt.Errorf("answers: invalid day %d for year %d", day, year)
			}
		}
	}

	return nil
}
