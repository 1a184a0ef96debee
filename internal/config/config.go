package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config defines CLI configuration.
type Config struct {
	Store StoreConfig `yaml:"store"`
	Log   LogConfig   `yaml:"log"`
	List  ListConfig  `yaml:"list"`
}

type StoreConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

// ListConfig holds the default list tokens. They go through the same
// alias parsing as command-line flags.
type ListConfig struct {
	Filter string `yaml:"filter"`
	Sort   string `yaml:"sort"`
}

// Load reads configuration from an optional .env file, an optional YAML
// file and environment variables, in increasing order of precedence.
func Load() (Config, error) {
	// A missing .env is the common case.
	_ = godotenv.Load()

	cfg := Config{
		Store: StoreConfig{
			Path: "tickets.yaml",
		},
		Log: LogConfig{
			Level: "warn",
		},
		List: ListConfig{
			Filter: "open",
			Sort:   "none",
		},
	}

	if path := os.Getenv("YAMTIK_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if storePath := os.Getenv("YAMTIK_STORE_PATH"); storePath != "" {
		cfg.Store.Path = storePath
	}
	if level := os.Getenv("YAMTIK_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if logPath := os.Getenv("YAMTIK_LOG_PATH"); logPath != "" {
		cfg.Log.Path = logPath
	}
	if filter := os.Getenv("YAMTIK_LIST_FILTER"); filter != "" {
		cfg.List.Filter = filter
	}
	if sort := os.Getenv("YAMTIK_LIST_SORT"); sort != "" {
		cfg.List.Sort = sort
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
