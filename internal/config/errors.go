// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Errors returned while loading or validating the configuration.
var (
	// ErrInvalidInputMode indicates an input mode other than "line" or "tui".
	ErrInvalidInputMode = errors.New("invalid input mode")
	// ErrInvalidLogLevel indicates a log level zerolog does not recognize.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrUnsupportedFileFormat indicates a config file extension other
	// than .json, .yaml or .yml.
	ErrUnsupportedFileFormat = errors.New("unsupported config file format")
)
