// Package config provides configuration management for taskboard.
//
// Settings come from a YAML file with environment overrides on top, so a
// container deployment can run without any file at all: the store
// credentials follow the SURREAL_* variables the original deployment used.
//
// Config file locations (priority order):
//  1. $TASKBOARD_CONFIG
//  2. ./taskboard.yaml
//  3. ~/.config/taskboard/config.yaml
//  4. /etc/taskboard/config.yaml
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the process configuration.
type Config struct {
	// Listen is the HTTP listen address, e.g. ":3000".
	Listen string      `yaml:"listen"`
	Store  StoreConfig `yaml:"store"`
}

// StoreConfig selects and parameterizes the repository backend.
type StoreConfig struct {
	// Backend is one of "surreal", "sqlite", "memory".
	Backend string        `yaml:"backend"`
	Surreal SurrealConfig `yaml:"surreal"`
	SQLite  SQLiteConfig  `yaml:"sqlite"`
}

// SurrealConfig holds the remote document database connection settings.
type SurrealConfig struct {
	Address   string `yaml:"address"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	Namespace string `yaml:"namespace"`
	Database  string `yaml:"database"`
}

// SQLiteConfig holds the local fallback store settings.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// Load finds and loads the config file, or returns defaults if none found,
// then applies environment overrides.
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		cfg := DefaultConfig()
		cfg.ApplyEnv()
		return cfg, "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path and applies environment
// overrides.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	cfg.ApplyEnv()

	return &cfg, path, nil
}

// FindConfigPath returns the first existing config file location, or "".
func FindConfigPath() string {
	candidates := []string{
		os.Getenv("TASKBOARD_CONFIG"),
		"./taskboard.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "taskboard", "config.yaml"))
	}
	candidates = append(candidates, "/etc/taskboard/config.yaml")

	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// DefaultConfig returns sensible defaults for a new installation.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	if c.Listen == "" {
		c.Listen = ":3000"
	}
	if c.Store.Backend == "" {
		c.Store.Backend = "surreal"
	}
	if c.Store.Surreal.Address == "" {
		c.Store.Surreal.Address = "ws://localhost:8000"
	}
	if c.Store.Surreal.Username == "" {
		c.Store.Surreal.Username = "root"
	}
	if c.Store.Surreal.Password == "" {
		c.Store.Surreal.Password = "root"
	}
	if c.Store.Surreal.Namespace == "" {
		c.Store.Surreal.Namespace = "taskboard"
	}
	if c.Store.Surreal.Database == "" {
		c.Store.Surreal.Database = "taskboard"
	}
	if c.Store.SQLite.Path == "" {
		c.Store.SQLite.Path = "./taskboard.db"
	}
}

// ApplyEnv overrides settings from environment variables. The SURREAL_*
// names match the original deployment's variables.
func (c *Config) ApplyEnv() {
	setFromEnv(&c.Listen, "TASKBOARD_ADDR")
	setFromEnv(&c.Store.Backend, "TASKBOARD_STORE")
	setFromEnv(&c.Store.Surreal.Address, "SURREAL_ADDRESS")
	setFromEnv(&c.Store.Surreal.Username, "SURREAL_USER")
	setFromEnv(&c.Store.Surreal.Password, "SURREAL_PASSWORD")
	setFromEnv(&c.Store.Surreal.Namespace, "SURREAL_NAMESPACE")
	setFromEnv(&c.Store.Surreal.Database, "SURREAL_DATABASE")
	setFromEnv(&c.Store.SQLite.Path, "TASKBOARD_SQLITE_PATH")
}

func setFromEnv(target *string, name string) {
	if v := os.Getenv(name); v != "" {
		*target = v
	}
}
