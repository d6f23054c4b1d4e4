package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file.
	userConfigFile = ".emsconfig.yaml"

	// envFile holds optional environment overrides.
	envFile = ".env"

	// Default configuration values
	DefaultDataFile = "employees.yaml"
	DefaultCurrency = "₹"
	DefaultLogLevel = "warn"
)

// Environment variables that override the config file.
const (
	EnvDataFile = "EMS_DATA_FILE"
	EnvBackend  = "EMS_BACKEND"
	EnvCurrency = "EMS_CURRENCY"
	EnvLogLevel = "EMS_LOG_LEVEL"
)

// Config represents user configuration from .emsconfig.yaml.
// This file is user-managed and never written by ems.
type Config struct {
	// DataFile is the snapshot path, relative to the working directory.
	DataFile string `yaml:"data_file"`

	// Backend is "yaml" or "sqlite". Empty means infer from DataFile.
	Backend string `yaml:"backend"`

	// Currency is the symbol printed before money amounts.
	Currency string `yaml:"currency"`

	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		DataFile: DefaultDataFile,
		Currency: DefaultCurrency,
		LogLevel: DefaultLogLevel,
	}
}

// LoadConfig loads dir/.emsconfig.yaml if it exists, otherwise defaults.
// Partial config files are merged with defaults. Variables from the process
// environment, then from dir/.env, override the file.
func LoadConfig(dir string) (*Config, error) {
	cfg := DefaultConfig()

	configPath := filepath.Join(dir, userConfigFile)
	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
		}
	}

	dotenv, err := readEnvFile(filepath.Join(dir, envFile))
	if err != nil {
		return nil, err
	}
	lookup := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}

	overrides := []struct {
		key    string
		target *string
	}{
		{EnvDataFile, &cfg.DataFile},
		{EnvBackend, &cfg.Backend},
		{EnvCurrency, &cfg.Currency},
		{EnvLogLevel, &cfg.LogLevel},
	}
	for _, o := range overrides {
		if v := lookup(o.key); v != "" {
			*o.target = v
		}
	}

	if cfg.DataFile != "" && !filepath.IsAbs(cfg.DataFile) {
		cfg.DataFile = filepath.Join(dir, cfg.DataFile)
	}

	return cfg, nil
}

// readEnvFile parses a dotenv file without touching the process environment.
// A missing file yields an empty map.
func readEnvFile(path string) (map[string]string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to access %s: %w", envFile, err)
	}
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", envFile, err)
	}
	return vars, nil
}

// ConfigPath returns the path to the user config file in dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, userConfigFile)
}
