// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// TimeOfDayLayout is the canonical text form of a [TimeOfDay].
const TimeOfDayLayout = "15:04:05"

// TimeOfDay is a wall-clock time without a date or a location.
//
// It is the time-only counterpart of [time.Time]: both expose
// Clock() (hour, minute, second), so time-of-day rules written against that
// method accept either type.
type TimeOfDay struct {
	// Hour is in the range [0, 23].
	Hour int

	// Minute is in the range [0, 59].
	Minute int

	// Second is in the range [0, 59].
	Second int
}

// NewTimeOfDay returns the TimeOfDay for the given clock reading, wrapped
// into a single day (25:00 becomes 01:00).
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDayOf(time.Date(0, time.January, 1, hour, minute, second, 0, time.UTC))
}

// TimeOfDayOf returns the wall-clock reading of t in t's own location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay{Hour: h, Minute: m, Second: s}
}

// ParseTimeOfDay parses s with the given time layout and keeps only the
// clock part.
func ParseTimeOfDay(layout, s string) (TimeOfDay, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %w", ErrInvalidTimeOfDay, err)
	}
	return TimeOfDayOf(t), nil
}

// Clock returns the hour, minute and second. It mirrors [time.Time.Clock].
func (t TimeOfDay) Clock() (hour, minute, second int) {
	return t.Hour, t.Minute, t.Second
}

// Seconds returns the number of seconds elapsed since midnight.
func (t TimeOfDay) Seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// Compare returns -1, 0 or +1 depending on whether t is before, equal to
// or after other.
func (t TimeOfDay) Compare(other TimeOfDay) int {
	a, b := t.Seconds(), other.Seconds()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether t is earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool { return t.Compare(other) < 0 }

// After reports whether t is later in the day than other.
func (t TimeOfDay) After(other TimeOfDay) bool { return t.Compare(other) > 0 }

// String formats t as HH:MM:SS.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}
