// Package config provides configuration management for verseek using Viper.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/turnkeylinux/verseek/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "verseek"

// DefaultRelease is the release label written into changelogs synthesized
// for auto-versioned seeks when no override is configured.
const DefaultRelease = "UNRELEASED"

// DefaultSumoCheckout is the arena checkout tool invoked for Sumo seeks.
const DefaultSumoCheckout = "sumo-checkout"

// Config represents the top-level configuration structure.
type Config struct {
	// Release is the release label for synthesized changelog entries.
	Release string `mapstructure:"release" yaml:"release"`

	// SumoCheckout is the command used to check out revisions in a Sumo arena.
	SumoCheckout string `mapstructure:"sumo_checkout" yaml:"sumo_checkout"`
}

// Default returns a configuration populated with the built-in defaults.
func Default() *Config {
	return &Config{
		Release:      DefaultRelease,
		SumoCheckout: DefaultSumoCheckout,
	}
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
// Calling it again resets any previously loaded state.
func Init() {
	viper.Reset()

	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	if dir := os.Getenv("VERSEEK_CONFIG_DIR"); dir != "" {
		viper.AddConfigPath(dir)
	} else {
		viper.AddConfigPath(paths.ConfigDir())
	}

	// Environment variable support (VERSEEK_RELEASE, VERSEEK_SUMO_CHECKOUT)
	viper.SetEnvPrefix("VERSEEK")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("release", DefaultRelease)
	viper.SetDefault("sumo_checkout", DefaultSumoCheckout)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, fmt.Errorf("validating config: %w", errs[0])
	}

	return &cfg, nil
}
