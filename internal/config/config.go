package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "caltrack.yaml"
	defaultDBPath     = "calories.db"
)

type Config struct {
	DBPath   string `yaml:"db_path"`
	Timezone string `yaml:"timezone"`
}

// Load reads the optional YAML config file and applies environment overrides
// on top. A missing file at the default path is fine; an explicitly named file
// must exist.
func Load(path string) (*Config, error) {
	cfg := &Config{
		DBPath: defaultDBPath,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) || path != DefaultConfigPath {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.loadFromEnv()

	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	return cfg, nil
}

func (c *Config) loadFromEnv() {
	if v := os.Getenv("CALTRACK_DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("CALTRACK_TZ"); v != "" {
		c.Timezone = v
	}
}

// Location resolves the configured timezone, falling back to the process-local
// zone when unset or invalid.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	location, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return location
}
