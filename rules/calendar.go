// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-input-guard/models"
)

// Future accepts instants strictly after the clock's current time.
func Future(clock Clock, msg ...string) Predicate[time.Time] {
	return instant("future", clock, identity, identity, 1, "Date must be in the future", msg)
}

// Past accepts instants strictly before the clock's current time.
func Past(clock Clock, msg ...string) Predicate[time.Time] {
	return instant("past", clock, identity, identity, -1, "Date must be in the past", msg)
}

// FutureDate accepts dates after today.
func FutureDate(clock Clock, msg ...string) Predicate[models.Date] {
	return instant("future", clock, dateMidnight, startOfDay, 1, "Date must be in the future", msg)
}

// PastDate accepts dates before today.
func PastDate(clock Clock, msg ...string) Predicate[models.Date] {
	return instant("past", clock, dateMidnight, startOfDay, -1, "Date must be in the past", msg)
}

// instant is the shared implementation of the future/past rules: extract
// maps the value to an instant, reference maps "now" to the instant it is
// compared with, and want is the required sign of the comparison.
func instant[T any](name string, clock Clock, extract func(T) time.Time, reference func(time.Time) time.Time, want int, def string, msg []string) Predicate[T] {
	return newPredicate(name,
		func(v T) bool { return extract(v).Compare(reference(now(clock))) == want },
		def, msg)
}

// Today accepts values falling on the clock's current date.
func Today[T Dated](clock Clock, msg ...string) Predicate[T] {
	return newPredicate("today",
		func(v T) bool { return dateOf(v) == models.DateOf(now(clock)) },
		"Date must be today", msg)
}

// NotToday rejects values falling on the clock's current date.
func NotToday[T Dated](clock Clock, msg ...string) Predicate[T] {
	return newPredicate("not_today",
		func(v T) bool { return dateOf(v) != models.DateOf(now(clock)) },
		"Date must not be today", msg)
}

// Weekday accepts Monday through Friday.
func Weekday[T Dated](msg ...string) Predicate[T] {
	return newPredicate("weekday",
		func(v T) bool {
			d := dateOf(v).Weekday()
			return d != time.Saturday && d != time.Sunday
		},
		"Date must fall on a weekday", msg)
}

// Weekend accepts Saturday and Sunday.
func Weekend[T Dated](msg ...string) Predicate[T] {
	return newPredicate("weekend",
		func(v T) bool {
			d := dateOf(v).Weekday()
			return d == time.Saturday || d == time.Sunday
		},
		"Date must fall on a weekend", msg)
}

// DayOfWeek accepts values falling on day.
func DayOfWeek[T Dated](day time.Weekday, msg ...string) Predicate[T] {
	return newPredicate("day_of_week",
		func(v T) bool { return dateOf(v).Weekday() == day },
		fmt.Sprintf("Date must fall on a %s", day), msg)
}

// WithinDays accepts values at most days calendar days away from today,
// in either direction.
func WithinDays[T Dated](days int, clock Clock, msg ...string) Predicate[T] {
	return newPredicate("within_days",
		func(v T) bool {
			diff := dateOf(v).DaysSince(models.DateOf(now(clock)))
			return diff >= -days && diff <= days
		},
		fmt.Sprintf("Date must be within %d days of today", days), msg)
}

// InYear accepts values in the given year.
func InYear[T Dated](year int, msg ...string) Predicate[T] {
	return newPredicate("year",
		func(v T) bool { return dateOf(v).Year == year },
		fmt.Sprintf("Date must be in the year %d", year), msg)
}

// LeapYear accepts values in a leap year.
func LeapYear[T Dated](msg ...string) Predicate[T] {
	return newPredicate("leap_year",
		func(v T) bool { return isLeap(dateOf(v).Year) },
		"Date must be in a leap year", msg)
}

// InMonth accepts values in the given month of any year.
func InMonth[T Dated](month time.Month, msg ...string) Predicate[T] {
	return newPredicate("month",
		func(v T) bool { return dateOf(v).Month == month },
		fmt.Sprintf("Date must be in %s", month), msg)
}

func dateOf[T Dated](v T) models.Date {
	y, m, d := v.Date()
	return models.Date{Year: y, Month: m, Day: d}
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func now(c Clock) time.Time {
	if c == nil {
		c = DefaultClock
	}
	return c.Now()
}

func identity(t time.Time) time.Time { return t }

func dateMidnight(d models.Date) time.Time { return d.In(time.UTC) }

func startOfDay(t time.Time) time.Time { return models.DateOf(t).In(time.UTC) }
