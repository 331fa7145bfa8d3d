// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"github.com/MKhiriev/go-input-guard/models"
	"github.com/MKhiriev/go-input-guard/rules"
	"github.com/MKhiriev/go-input-guard/validator"
)

// TimeOfDayBuilder accumulates wall-clock rules for a time without a date.
type TimeOfDayBuilder struct {
	core[models.TimeOfDay]
}

func NewTimeOfDay(prompt, layout string, in validator.InputProvider, out validator.OutputProvider, opts ...validator.Option) *TimeOfDayBuilder {
	return &TimeOfDayBuilder{core: newCore[models.TimeOfDay](prompt, validator.ParseTimeOfDay(layout), in, out, opts)}
}

// WithBusinessHours requires a time between 09:00 and 17:00 inclusive.
func (b *TimeOfDayBuilder) WithBusinessHours(msg ...string) *TimeOfDayBuilder {
	b.add(rules.BusinessHours[models.TimeOfDay](msg...))
	return b
}

// WithBefore requires a time of day strictly earlier than limit.
func (b *TimeOfDayBuilder) WithBefore(limit models.TimeOfDay, msg ...string) *TimeOfDayBuilder {
	b.add(rules.BeforeTime[models.TimeOfDay](limit, msg...))
	return b
}

// WithAfter requires a time of day strictly later than limit.
func (b *TimeOfDayBuilder) WithAfter(limit models.TimeOfDay, msg ...string) *TimeOfDayBuilder {
	b.add(rules.AfterTime[models.TimeOfDay](limit, msg...))
	return b
}

// WithHour requires the given hour (0-23).
func (b *TimeOfDayBuilder) WithHour(hour int, msg ...string) *TimeOfDayBuilder {
	b.add(rules.InHour[models.TimeOfDay](hour, msg...))
	return b
}

// WithOnTheHour requires zero minutes and seconds.
func (b *TimeOfDayBuilder) WithOnTheHour(msg ...string) *TimeOfDayBuilder {
	b.add(rules.OnTheHour[models.TimeOfDay](msg...))
	return b
}

// WithOnTheMinute requires zero seconds.
func (b *TimeOfDayBuilder) WithOnTheMinute(msg ...string) *TimeOfDayBuilder {
	b.add(rules.OnTheMinute[models.TimeOfDay](msg...))
	return b
}

// WithMinuteIncrement requires a whole-minute time whose minute is a multiple
// of minutes. minutes must be positive.
func (b *TimeOfDayBuilder) WithMinuteIncrement(minutes int, msg ...string) *TimeOfDayBuilder {
	b.add(rules.MinuteIncrement[models.TimeOfDay](minutes, msg...))
	return b
}

// WithAM requires a time before noon.
func (b *TimeOfDayBuilder) WithAM(msg ...string) *TimeOfDayBuilder {
	b.add(rules.AM[models.TimeOfDay](msg...))
	return b
}

// WithPM requires a time from noon on.
func (b *TimeOfDayBuilder) WithPM(msg ...string) *TimeOfDayBuilder {
	b.add(rules.PM[models.TimeOfDay](msg...))
	return b
}

// WithMidnight requires exactly 00:00:00.
func (b *TimeOfDayBuilder) WithMidnight(msg ...string) *TimeOfDayBuilder {
	b.add(rules.Midnight[models.TimeOfDay](msg...))
	return b
}

// WithNoon requires exactly 12:00:00.
func (b *TimeOfDayBuilder) WithNoon(msg ...string) *TimeOfDayBuilder {
	b.add(rules.Noon[models.TimeOfDay](msg...))
	return b
}

// WithCustom adds a rule from check that reports message when check returns
// false.
func (b *TimeOfDayBuilder) WithCustom(check func(models.TimeOfDay) bool, message string) *TimeOfDayBuilder {
	b.add(rules.Custom(check, message))
	return b
}

// WithRule appends a prebuilt rule.
func (b *TimeOfDayBuilder) WithRule(rule rules.Rule[models.TimeOfDay]) *TimeOfDayBuilder {
	b.add(rule)
	return b
}
