// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for greenflow.
type Config struct {
	Currency       string `mapstructure:"currency" yaml:"currency"`
	PaymentDelayMS int    `mapstructure:"payment_delay_ms" yaml:"payment_delay_ms"`
	LogLevel       string `mapstructure:"log_level" yaml:"log_level"`
	LogFile        string `mapstructure:"log_file" yaml:"log_file"`
}

// PaymentDelay returns the simulated payment latency as a duration.
func (c *Config) PaymentDelay() time.Duration {
	return time.Duration(c.PaymentDelayMS) * time.Millisecond
}

// Load loads configuration with full precedence:
// ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("greenflow")

	v.SetDefault("currency", "AED")
	v.SetDefault("payment_delay_ms", 2000)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	v.SetEnvPrefix("GREENFLOW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit ENV bindings for better int parsing
	if err := v.BindEnv("currency", "GREENFLOW_CURRENCY"); err != nil {
		return nil, fmt.Errorf("binding currency env: %w", err)
	}
	if err := v.BindEnv("payment_delay_ms", "GREENFLOW_PAYMENT_DELAY_MS"); err != nil {
		return nil, fmt.Errorf("binding payment_delay_ms env: %w", err)
	}
	if err := v.BindEnv("log_level", "GREENFLOW_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("binding log_level env: %w", err)
	}
	if err := v.BindEnv("log_file", "GREENFLOW_LOG_FILE"); err != nil {
		return nil, fmt.Errorf("binding log_file env: %w", err)
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/greenflow/greenflow.yml or $XDG_CONFIG_HOME/greenflow/greenflow.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "greenflow", "greenflow.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "greenflow", "greenflow.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "greenflow.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(ProjectPath(), data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
