// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks the merged [StructuredConfig] before it is used.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Console.InputMode {
	case InputModeLine, InputModeTUI:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidInputMode, cfg.Console.InputMode)
	}

	if _, err := cfg.Log.ParseLevel(); err != nil {
		return err
	}

	return nil
}

// ParseLevel returns the zerolog level named by Level.
func (l Log) ParseLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		return zerolog.Disabled, fmt.Errorf("%w: %q", ErrInvalidLogLevel, l.Level)
	}
	return level, nil
}
