// Package config provides configuration management for the verseek CLI.
//
// This package handles loading and validating verseek's own configuration
// file. Seek behavior itself is configured through the store (git refs),
// not here; this file only carries tool-level knobs.
//
// # Configuration File
//
// The default configuration file location is ~/.config/verseek/config.yaml.
// The configuration file uses YAML format with the following structure:
//
//	release: UNRELEASED          # release label for synthesized changelogs
//	sumo_checkout: sumo-checkout # arena checkout command
//
// Every key can also be set through the environment with a VERSEEK_ prefix:
//
//	VERSEEK_RELEASE=experimental verseek ./pkg 0.42
//
// # Loading Configuration
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return fmt.Errorf("loading config: %w", err)
//	}
//
// Loaded configurations are validated automatically; [Validate] can also be
// called directly on a hand-built Config.
package config
