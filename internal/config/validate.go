package config

import (
	"errors"
	"strings"
)

// Validation errors for configuration fields.
var (
	// ErrEmptyRelease indicates the release label is empty.
	ErrEmptyRelease = errors.New("release must not be empty")

	// ErrInvalidRelease indicates the release label contains whitespace.
	// The label is written as a single token in the changelog entry header.
	ErrInvalidRelease = errors.New("release must be a single word")

	// ErrEmptySumoCheckout indicates the arena checkout command is empty.
	ErrEmptySumoCheckout = errors.New("sumo_checkout must not be empty")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	switch {
	case cfg.Release == "":
		errs = append(errs, ErrEmptyRelease)
	case strings.ContainsAny(cfg.Release, " \t\n"):
		errs = append(errs, ErrInvalidRelease)
	}

	if strings.TrimSpace(cfg.SumoCheckout) == "" {
		errs = append(errs, ErrEmptySumoCheckout)
	}

	return errs
}
