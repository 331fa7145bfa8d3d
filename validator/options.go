// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validator

import (
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-input-guard/internal/logger"
	"github.com/MKhiriev/go-input-guard/rules"
)

// Option configures a Validator.
type Option func(*options)

type options struct {
	log   *logger.Logger
	clock rules.Clock
}

func defaultOptions() options {
	return options{
		clock: rules.DefaultClock,
	}
}

// WithLogger makes the validator log every attempt at debug level.
// Without it the validator logs to the logger carried by the context passed
// to GetValidInputContext, if any.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.log = &logger.Logger{Logger: l}
	}
}

// WithClock sets the clock handed to time-relative rules by builders.
// A nil clock keeps the default.
func WithClock(c rules.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}
