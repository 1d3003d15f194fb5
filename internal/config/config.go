// Package config handles configuration loading from YAML files and environment variables.
// Configuration precedence: CLI flags > environment variables > config file > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a wrapper around time.Duration that supports YAML unmarshaling
// from human-readable strings like "15s", "30s", "1m".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements the yaml.Unmarshaler interface for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := time.ParseDuration(value.Value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value.Value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("unsupported duration format: %v", value.Kind)
	}
}

// MarshalYAML implements the yaml.Marshaler interface for Duration.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Config holds all BootWatch configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Exec    ExecConfig    `yaml:"exec"`
	Delete  DeleteConfig  `yaml:"delete"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ExecConfig bounds the platform commands (osascript, launchctl, reg).
type ExecConfig struct {
	Timeout Duration `yaml:"timeout"`
}

// DeleteConfig controls the deletion flow of the shell.
type DeleteConfig struct {
	Confirm bool `yaml:"confirm"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "warn",
			File:  "",
		},
		Exec: ExecConfig{
			Timeout: Duration{30 * time.Second},
		},
		Delete: DeleteConfig{
			Confirm: true,
		},
	}
}

// CLIOverrides holds values from command-line flags.
// Empty strings are treated as "not set" and skipped.
type CLIOverrides struct {
	LogLevel string
	LogFile  string
}

// Locate searches standard config file paths and returns the first one found.
// Returns empty string if no config file exists.
func Locate() string {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// DefaultPath returns the per-user config location, where `config init`
// writes by default.
func DefaultPath() string {
	return configSearchPaths()[0]
}

// LoadLayered loads configuration with the full precedence chain:
// CLI flags > env vars > YAML file > defaults.
//
// An optional configPath argument controls file discovery:
//   - omitted        → auto-discover via Locate()
//   - explicit value → use that path ("" means no file)
//
// An explicitly named file must exist; an auto-discovered one may vanish.
func LoadLayered(cli CLIOverrides, configPath ...string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := len(configPath) > 0
	var filePath string
	if explicit {
		filePath = configPath[0]
	} else {
		filePath = Locate()
	}
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", filePath, err)
			}
		case explicit || !os.IsNotExist(err):
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if cli.LogLevel != "" {
		cfg.Logging.Level = cli.LogLevel
	}
	if cli.LogFile != "" {
		cfg.Logging.File = cli.LogFile
	}

	return cfg, nil
}

// WriteConfig serializes the config to a YAML file at the given path.
// Creates parent directories if needed.
func WriteConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0640)
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}

// applyEnvOverrides applies BOOTWATCH_* environment variables.
func applyEnvOverrides(cfg *Config) error {
	if level := os.Getenv("BOOTWATCH_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if file := os.Getenv("BOOTWATCH_LOG_FILE"); file != "" {
		cfg.Logging.File = file
	}
	if timeout := os.Getenv("BOOTWATCH_EXEC_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid BOOTWATCH_EXEC_TIMEOUT %q: %w", timeout, err)
		}
		cfg.Exec.Timeout = Duration{d}
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (expected debug, info, warn or error)", c.Logging.Level)
	}
	if c.Exec.Timeout.Duration < 0 {
		return fmt.Errorf("exec timeout must not be negative (got %s)", c.Exec.Timeout.Duration)
	}
	return nil
}
