// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"time"

	"github.com/MKhiriev/go-input-guard/models"
	"github.com/MKhiriev/go-input-guard/rules"
	"github.com/MKhiriev/go-input-guard/validator"
)

// DateTimeBuilder accumulates calendar and wall-clock rules for a full
// date and time. Rules relative to "now" read the validator's clock.
type DateTimeBuilder struct {
	core[time.Time]
}

// NewDateTime returns a builder for date-times. layout, when non-empty, is
// the exact format the input must use.
func NewDateTime(prompt, layout string, in validator.InputProvider, out validator.OutputProvider, opts ...validator.Option) *DateTimeBuilder {
	return &DateTimeBuilder{core: newCore[time.Time](prompt, validator.ParseDateTime(layout), in, out, opts)}
}

// WithFuture requires a moment after the validator clock's now.
func (b *DateTimeBuilder) WithFuture(msg ...string) *DateTimeBuilder {
	b.add(rules.Future(b.clock(), msg...))
	return b
}

// WithPast requires a moment before the validator clock's now.
func (b *DateTimeBuilder) WithPast(msg ...string) *DateTimeBuilder {
	b.add(rules.Past(b.clock(), msg...))
	return b
}

// WithToday requires today's date on the validator clock.
func (b *DateTimeBuilder) WithToday(msg ...string) *DateTimeBuilder {
	b.add(rules.Today[time.Time](b.clock(), msg...))
	return b
}

// WithNotToday rejects today's date.
func (b *DateTimeBuilder) WithNotToday(msg ...string) *DateTimeBuilder {
	b.add(rules.NotToday[time.Time](b.clock(), msg...))
	return b
}

// WithWeekday rejects Saturdays and Sundays.
func (b *DateTimeBuilder) WithWeekday(msg ...string) *DateTimeBuilder {
	b.add(rules.Weekday[time.Time](msg...))
	return b
}

// WithWeekend accepts only Saturdays and Sundays.
func (b *DateTimeBuilder) WithWeekend(msg ...string) *DateTimeBuilder {
	b.add(rules.Weekend[time.Time](msg...))
	return b
}

// WithDayOfWeek requires the given day of the week.
func (b *DateTimeBuilder) WithDayOfWeek(day time.Weekday, msg ...string) *DateTimeBuilder {
	b.add(rules.DayOfWeek[time.Time](day, msg...))
	return b
}

// WithinDays requires a date at most days calendar days from today, in
// either direction.
func (b *DateTimeBuilder) WithinDays(days int, msg ...string) *DateTimeBuilder {
	b.add(rules.WithinDays[time.Time](days, b.clock(), msg...))
	return b
}

// WithYear requires the given calendar year.
func (b *DateTimeBuilder) WithYear(year int, msg ...string) *DateTimeBuilder {
	b.add(rules.InYear[time.Time](year, msg...))
	return b
}

// WithLeapYear requires a date in a leap year.
func (b *DateTimeBuilder) WithLeapYear(msg ...string) *DateTimeBuilder {
	b.add(rules.LeapYear[time.Time](msg...))
	return b
}

// WithMonth requires the given month.
func (b *DateTimeBuilder) WithMonth(month time.Month, msg ...string) *DateTimeBuilder {
	b.add(rules.InMonth[time.Time](month, msg...))
	return b
}

// WithBusinessHours requires a time between 09:00 and 17:00 inclusive.
func (b *DateTimeBuilder) WithBusinessHours(msg ...string) *DateTimeBuilder {
	b.add(rules.BusinessHours[time.Time](msg...))
	return b
}

// WithBefore requires a time of day strictly earlier than limit.
func (b *DateTimeBuilder) WithBefore(limit models.TimeOfDay, msg ...string) *DateTimeBuilder {
	b.add(rules.BeforeTime[time.Time](limit, msg...))
	return b
}

// WithAfter requires a time of day strictly later than limit.
func (b *DateTimeBuilder) WithAfter(limit models.TimeOfDay, msg ...string) *DateTimeBuilder {
	b.add(rules.AfterTime[time.Time](limit, msg...))
	return b
}

// WithHour requires the given hour (0-23).
func (b *DateTimeBuilder) WithHour(hour int, msg ...string) *DateTimeBuilder {
	b.add(rules.InHour[time.Time](hour, msg...))
	return b
}

// WithOnTheHour requires zero minutes and seconds.
func (b *DateTimeBuilder) WithOnTheHour(msg ...string) *DateTimeBuilder {
	b.add(rules.OnTheHour[time.Time](msg...))
	return b
}

// WithOnTheMinute requires zero seconds.
func (b *DateTimeBuilder) WithOnTheMinute(msg ...string) *DateTimeBuilder {
	b.add(rules.OnTheMinute[time.Time](msg...))
	return b
}

// WithMinuteIncrement requires a whole-minute time whose minute is a multiple
// of minutes. minutes must be positive.
func (b *DateTimeBuilder) WithMinuteIncrement(minutes int, msg ...string) *DateTimeBuilder {
	b.add(rules.MinuteIncrement[time.Time](minutes, msg...))
	return b
}

// WithAM requires a time before noon.
func (b *DateTimeBuilder) WithAM(msg ...string) *DateTimeBuilder {
	b.add(rules.AM[time.Time](msg...))
	return b
}

// WithPM requires a time from noon on.
func (b *DateTimeBuilder) WithPM(msg ...string) *DateTimeBuilder {
	b.add(rules.PM[time.Time](msg...))
	return b
}

// WithMidnight requires exactly 00:00:00.
func (b *DateTimeBuilder) WithMidnight(msg ...string) *DateTimeBuilder {
	b.add(rules.Midnight[time.Time](msg...))
	return b
}

// WithNoon requires exactly 12:00:00.
func (b *DateTimeBuilder) WithNoon(msg ...string) *DateTimeBuilder {
	b.add(rules.Noon[time.Time](msg...))
	return b
}

// WithCustom adds a rule from check that reports message when check returns
// false.
func (b *DateTimeBuilder) WithCustom(check func(time.Time) bool, message string) *DateTimeBuilder {
	b.add(rules.Custom(check, message))
	return b
}

// WithRule appends a prebuilt rule.
func (b *DateTimeBuilder) WithRule(rule rules.Rule[time.Time]) *DateTimeBuilder {
	b.add(rule)
	return b
}
