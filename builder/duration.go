// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"time"

	"github.com/MKhiriev/go-input-guard/rules"
	"github.com/MKhiriev/go-input-guard/validator"
)

// DurationBuilder accumulates rules for time spans entered as "1h30m" or
// "01:30:00".
type DurationBuilder struct {
	core[time.Duration]
}

func NewDuration(prompt string, in validator.InputProvider, out validator.OutputProvider, opts ...validator.Option) *DurationBuilder {
	return &DurationBuilder{core: newCore[time.Duration](prompt, validator.ParseDuration, in, out, opts)}
}

// WithPositive requires a duration greater than zero.
func (b *DurationBuilder) WithPositive(msg ...string) *DurationBuilder {
	b.add(rules.PositiveDuration(msg...))
	return b
}

// WithMax requires d <= max.
func (b *DurationBuilder) WithMax(max time.Duration, msg ...string) *DurationBuilder {
	b.add(rules.MaxDuration(max, msg...))
	return b
}

// WithMin requires d >= min.
func (b *DurationBuilder) WithMin(min time.Duration, msg ...string) *DurationBuilder {
	b.add(rules.MinDuration(min, msg...))
	return b
}

// WithWorkingHours requires 0 <= d <= hours hours.
func (b *DurationBuilder) WithWorkingHours(hours int, msg ...string) *DurationBuilder {
	b.add(rules.WorkingHours(hours, msg...))
	return b
}

// WithWholeHours requires an exact number of hours.
func (b *DurationBuilder) WithWholeHours(msg ...string) *DurationBuilder {
	b.add(rules.WholeHours(msg...))
	return b
}

// WithWholeMinutes requires an exact number of minutes.
func (b *DurationBuilder) WithWholeMinutes(msg ...string) *DurationBuilder {
	b.add(rules.WholeMinutes(msg...))
	return b
}

// WithIncrement requires a multiple of step. step must be positive.
func (b *DurationBuilder) WithIncrement(step time.Duration, msg ...string) *DurationBuilder {
	b.add(rules.DurationIncrement(step, msg...))
	return b
}

// WithinOneDay requires -24h <= d <= 24h.
func (b *DurationBuilder) WithinOneDay(msg ...string) *DurationBuilder {
	b.add(rules.WithinOneDay(msg...))
	return b
}

// WithCustom adds a rule from check that reports message when check returns
// false.
func (b *DurationBuilder) WithCustom(check func(time.Duration) bool, message string) *DurationBuilder {
	b.add(rules.Custom(check, message))
	return b
}

// WithRule appends a prebuilt rule.
func (b *DurationBuilder) WithRule(rule rules.Rule[time.Duration]) *DurationBuilder {
	b.add(rule)
	return b
}
