// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import (
	"fmt"

	"github.com/MKhiriev/go-input-guard/models"
)

var (
	businessOpen  = models.NewTimeOfDay(9, 0, 0)
	businessClose = models.NewTimeOfDay(17, 0, 0)
)

// BusinessHours accepts times between 09:00 and 17:00 inclusive.
func BusinessHours[T Timed](msg ...string) Predicate[T] {
	return newPredicate("business_hours",
		func(v T) bool {
			t := clockOf(v)
			return !t.Before(businessOpen) && !t.After(businessClose)
		},
		"Time must be within business hours (09:00-17:00)", msg)
}

// BeforeTime accepts times strictly earlier in the day than limit.
func BeforeTime[T Timed](limit models.TimeOfDay, msg ...string) Predicate[T] {
	return newPredicate("before_time",
		func(v T) bool { return clockOf(v).Before(limit) },
		fmt.Sprintf("Time must be before %s", limit), msg)
}

// AfterTime accepts times strictly later in the day than limit.
func AfterTime[T Timed](limit models.TimeOfDay, msg ...string) Predicate[T] {
	return newPredicate("after_time",
		func(v T) bool { return clockOf(v).After(limit) },
		fmt.Sprintf("Time must be after %s", limit), msg)
}

// InHour accepts times whose hour equals hour.
func InHour[T Timed](hour int, msg ...string) Predicate[T] {
	return newPredicate("hour",
		func(v T) bool { return clockOf(v).Hour == hour },
		fmt.Sprintf("Time must be within hour %d", hour), msg)
}

// OnTheHour accepts times with zero minutes and seconds.
func OnTheHour[T Timed](msg ...string) Predicate[T] {
	return newPredicate("whole_hour",
		func(v T) bool {
			t := clockOf(v)
			return t.Minute == 0 && t.Second == 0
		},
		"Time must be on the hour", msg)
}

// OnTheMinute accepts times with zero seconds.
func OnTheMinute[T Timed](msg ...string) Predicate[T] {
	return newPredicate("whole_minute",
		func(v T) bool { return clockOf(v).Second == 0 },
		"Time must be on a whole minute", msg)
}

// MinuteIncrement accepts whole-minute times whose minute is a multiple of
// minutes (e.g. 15 for quarter-hour slots). minutes must be positive.
func MinuteIncrement[T Timed](minutes int, msg ...string) Predicate[T] {
	return newPredicate("minute_increment",
		func(v T) bool {
			t := clockOf(v)
			return t.Second == 0 && t.Minute%minutes == 0
		},
		fmt.Sprintf("Time must be in %d-minute increments", minutes), msg)
}

// AM accepts times before noon.
func AM[T Timed](msg ...string) Predicate[T] {
	return newPredicate("am",
		func(v T) bool { return clockOf(v).Hour < 12 },
		"Time must be in the AM", msg)
}

// PM accepts times from noon on.
func PM[T Timed](msg ...string) Predicate[T] {
	return newPredicate("pm",
		func(v T) bool { return clockOf(v).Hour >= 12 },
		"Time must be in the PM", msg)
}

// Midnight accepts exactly 00:00:00.
func Midnight[T Timed](msg ...string) Predicate[T] {
	return newPredicate("midnight",
		func(v T) bool { return clockOf(v).Seconds() == 0 },
		"Time must be midnight", msg)
}

// Noon accepts exactly 12:00:00.
func Noon[T Timed](msg ...string) Predicate[T] {
	return newPredicate("noon",
		func(v T) bool { return clockOf(v) == models.NewTimeOfDay(12, 0, 0) },
		"Time must be noon", msg)
}

func clockOf[T Timed](v T) models.TimeOfDay {
	h, m, s := v.Clock()
	return models.TimeOfDay{Hour: h, Minute: m, Second: s}
}
