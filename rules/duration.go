// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// PositiveDuration accepts durations strictly greater than zero.
func PositiveDuration(msg ...string) Predicate[time.Duration] {
	return newPredicate("positive_duration",
		func(v time.Duration) bool { return v > 0 },
		"Duration must be positive", msg)
}

// MaxDuration accepts durations not longer than max.
func MaxDuration(max time.Duration, msg ...string) Predicate[time.Duration] {
	return newPredicate("max_duration",
		func(v time.Duration) bool { return v <= max },
		fmt.Sprintf("Duration must not exceed %s", max), msg)
}

// MinDuration accepts durations at least min long.
func MinDuration(min time.Duration, msg ...string) Predicate[time.Duration] {
	return newPredicate("min_duration",
		func(v time.Duration) bool { return v >= min },
		fmt.Sprintf("Duration must be at least %s", min), msg)
}

// WorkingHours accepts non-negative durations of at most hours hours.
func WorkingHours(hours int, msg ...string) Predicate[time.Duration] {
	limit := time.Duration(hours) * time.Hour
	return newPredicate("working_hours",
		func(v time.Duration) bool { return v >= 0 && v <= limit },
		fmt.Sprintf("Duration must not exceed %d working hours", hours), msg)
}

// WholeHours accepts durations that are an exact number of hours.
func WholeHours(msg ...string) Predicate[time.Duration] {
	return newPredicate("whole_hours",
		func(v time.Duration) bool { return v%time.Hour == 0 },
		"Duration must be a whole number of hours", msg)
}

// WholeMinutes accepts durations that are an exact number of minutes.
func WholeMinutes(msg ...string) Predicate[time.Duration] {
	return newPredicate("whole_minutes",
		func(v time.Duration) bool { return v%time.Minute == 0 },
		"Duration must be a whole number of minutes", msg)
}

// DurationIncrement accepts durations that are a multiple of step.
// step must be positive.
func DurationIncrement(step time.Duration, msg ...string) Predicate[time.Duration] {
	return newPredicate("duration_increment",
		func(v time.Duration) bool { return v%step == 0 },
		fmt.Sprintf("Duration must be in increments of %s", step), msg)
}

// WithinOneDay accepts durations between -24h and 24h inclusive.
func WithinOneDay(msg ...string) Predicate[time.Duration] {
	return newPredicate("within_one_day",
		func(v time.Duration) bool { return v >= -day && v <= day },
		"Duration must be within one day", msg)
}
