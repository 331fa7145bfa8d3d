// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"time"

	"github.com/MKhiriev/go-input-guard/models"
	"github.com/MKhiriev/go-input-guard/rules"
	"github.com/MKhiriev/go-input-guard/validator"
)

// DateBuilder accumulates calendar rules for a date without a time.
type DateBuilder struct {
	core[models.Date]
}

func NewDate(prompt, layout string, in validator.InputProvider, out validator.OutputProvider, opts ...validator.Option) *DateBuilder {
	return &DateBuilder{core: newCore[models.Date](prompt, validator.ParseDate(layout), in, out, opts)}
}

// WithFuture requires a date after today.
func (b *DateBuilder) WithFuture(msg ...string) *DateBuilder {
	b.add(rules.FutureDate(b.clock(), msg...))
	return b
}

// WithPast requires a date before today.
func (b *DateBuilder) WithPast(msg ...string) *DateBuilder {
	b.add(rules.PastDate(b.clock(), msg...))
	return b
}

// WithToday requires today's date on the validator clock.
func (b *DateBuilder) WithToday(msg ...string) *DateBuilder {
	b.add(rules.Today[models.Date](b.clock(), msg...))
	return b
}

// WithNotToday rejects today's date.
func (b *DateBuilder) WithNotToday(msg ...string) *DateBuilder {
	b.add(rules.NotToday[models.Date](b.clock(), msg...))
	return b
}

// WithWeekday rejects Saturdays and Sundays.
func (b *DateBuilder) WithWeekday(msg ...string) *DateBuilder {
	b.add(rules.Weekday[models.Date](msg...))
	return b
}

// WithWeekend accepts only Saturdays and Sundays.
func (b *DateBuilder) WithWeekend(msg ...string) *DateBuilder {
	b.add(rules.Weekend[models.Date](msg...))
	return b
}

// WithDayOfWeek requires the given day of the week.
func (b *DateBuilder) WithDayOfWeek(day time.Weekday, msg ...string) *DateBuilder {
	b.add(rules.DayOfWeek[models.Date](day, msg...))
	return b
}

// WithinDays requires a date at most days calendar days from today, in
// either direction.
func (b *DateBuilder) WithinDays(days int, msg ...string) *DateBuilder {
	b.add(rules.WithinDays[models.Date](days, b.clock(), msg...))
	return b
}

// WithYear requires the given calendar year.
func (b *DateBuilder) WithYear(year int, msg ...string) *DateBuilder {
	b.add(rules.InYear[models.Date](year, msg...))
	return b
}

// WithLeapYear requires a date in a leap year.
func (b *DateBuilder) WithLeapYear(msg ...string) *DateBuilder {
	b.add(rules.LeapYear[models.Date](msg...))
	return b
}

// WithMonth requires the given month.
func (b *DateBuilder) WithMonth(month time.Month, msg ...string) *DateBuilder {
	b.add(rules.InMonth[models.Date](month, msg...))
	return b
}

// WithCustom adds a rule from check that reports message when check returns
// false.
func (b *DateBuilder) WithCustom(check func(models.Date) bool, message string) *DateBuilder {
	b.add(rules.Custom(check, message))
	return b
}

// WithRule appends a prebuilt rule.
func (b *DateBuilder) WithRule(rule rules.Rule[models.Date]) *DateBuilder {
	b.add(rule)
	return b
}
