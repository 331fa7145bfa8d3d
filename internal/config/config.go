// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-input-guard/console"
)

// EnvPrefix is prepended to every environment variable the package reads.
const EnvPrefix = "INPUTGUARD_"

// Input modes.
const (
	InputModeLine = "line"
	InputModeTUI  = "tui"
)

// StructuredConfig is the top-level configuration for the default console
// and for logging. It is populated by merging defaults, an optional config
// file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to nested env lookups (caarlos0/env).
//   - env       — variable name for scalar fields, after [EnvPrefix].
//   - json/yaml — keys used in the config file.
type StructuredConfig struct {
	// Console holds the settings of the terminal collectors.
	Console Console `envPrefix:"CONSOLE_" json:"console" yaml:"console"`

	// Log holds the logger settings.
	Log Log `envPrefix:"LOG_" json:"log" yaml:"log"`

	// FilePath is the optional path to a JSON or YAML config file.
	// Env: INPUTGUARD_CONFIG; flags: -c, -config.
	FilePath string `env:"CONFIG" json:"-" yaml:"-"`
}

// Console configures the terminal collectors.
type Console struct {
	// Separator is written after every prompt.
	// Env: INPUTGUARD_CONSOLE_SEPARATOR
	Separator string `env:"SEPARATOR" json:"separator" yaml:"separator"`

	// AckHint is shown under an error message while waiting for the user
	// to press Enter.
	// Env: INPUTGUARD_CONSOLE_ACK_HINT
	AckHint string `env:"ACK_HINT" json:"ack_hint" yaml:"ack_hint"`

	// NoColor disables styled error output. Nil means unset, so a later
	// source can turn color back on with an explicit false.
	// Env: INPUTGUARD_CONSOLE_NO_COLOR
	NoColor *bool `env:"NO_COLOR" json:"no_color" yaml:"no_color"`

	// InputMode is "line" for plain line reads or "tui" for an editable
	// text field.
	// Env: INPUTGUARD_CONSOLE_INPUT_MODE
	InputMode string `env:"INPUT_MODE" json:"input_mode" yaml:"input_mode"`
}

// Log configures the zerolog logger.
type Log struct {
	// Level is a zerolog level name such as "debug" or "disabled".
	// Env: INPUTGUARD_LOG_LEVEL
	Level string `env:"LEVEL" json:"level" yaml:"level"`

	// File is the path logs are appended to. Empty means stderr.
	// Env: INPUTGUARD_LOG_FILE
	File string `env:"FILE" json:"file" yaml:"file"`
}

// Default returns the configuration used when no source sets a value.
func Default() *StructuredConfig {
	return &StructuredConfig{
		Console: Console{
			Separator: console.DefaultSeparator,
			AckHint:   console.DefaultAckHint,
			InputMode: InputModeLine,
		},
		Log: Log{
			Level: zerolog.Disabled.String(),
		},
	}
}

// Options converts the settings into console options.
func (c Console) Options() []console.Option {
	return []console.Option{
		console.WithSeparator(c.Separator),
		console.WithAckHint(c.AckHint),
		console.WithColor(!c.Colorless()),
	}
}

// Colorless reports whether styled output was switched off.
func (c Console) Colorless() bool {
	return c.NoColor != nil && *c.NoColor
}

// TUI reports whether input should be read through the text field.
func (c Console) TUI() bool {
	return c.InputMode == InputModeTUI
}

// GetStructuredConfig loads, merges and validates the configuration.
// Sources in increasing priority:
//  1. Defaults
//  2. Config file (path from env or flags)
//  3. Environment variables, including a .env file in the working directory
//  4. Command-line flags parsed from args
//
// A source overrides a string only with a non-empty value, so an empty
// separator cannot clear a lower-priority one.
//
// args excludes the program name. Pass nil to skip flag parsing.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
