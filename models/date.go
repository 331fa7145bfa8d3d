// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// DateLayout is the canonical text form of a [Date] (ISO 8601 calendar date).
const DateLayout = "2006-01-02"

// Date is a calendar date without a time of day or a location.
//
// It is the date-only counterpart of [time.Time]: both expose
// Date() (year, month, day), so calendar rules written against that method
// accept either type.
type Date struct {
	// Year is the full year, e.g. 2026.
	Year int

	// Month is the month of the year.
	Month time.Month

	// Day is the day of the month, starting at 1.
	Day int
}

// NewDate returns the normalized Date for the given year, month and day.
// Out-of-range values are normalized the same way [time.Date] does it,
// so NewDate(2026, time.January, 32) is February 1st.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses s with the given time layout and keeps only the date part.
func ParseDate(layout, s string) (Date, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}
	return DateOf(t), nil
}

// Date returns the year, month and day. It mirrors [time.Time.Date].
func (d Date) Date() (year int, month time.Month, day int) {
	return d.Year, d.Month, d.Day
}

// In returns the instant of midnight at the start of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.In(time.UTC).Weekday()
}

// AddDays returns d shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return DateOf(d.In(time.UTC).AddDate(0, 0, n))
}

// DaysSince returns the number of calendar days from other to d.
// The result is negative when d is before other.
func (d Date) DaysSince(other Date) int {
	const secondsPerDay = 24 * 60 * 60
	return int((d.In(time.UTC).Unix() - other.In(time.UTC).Unix()) / secondsPerDay)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to
// or after other.
func (d Date) Compare(other Date) int {
	return d.In(time.UTC).Compare(other.In(time.UTC))
}

// Before reports whether d is before other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is after other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return d.In(time.UTC).Format(DateLayout)
}
