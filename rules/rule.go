// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import (
	"time"

	"github.com/zoobzio/clockz"
)

// Rule is a predicate over a parsed value together with the message shown
// to the user when the predicate does not hold.
//
// Implementations must be immutable: Message returns the same text for the
// whole lifetime of the rule.
type Rule[T any] interface {
	// IsValid reports whether value satisfies the rule.
	IsValid(value T) bool

	// Message returns the failure explanation shown to the user.
	Message() string
}

// Predicate is the Rule implementation returned by every constructor in
// this package.
type Predicate[T any] struct {
	name    string
	check   func(T) bool
	message string
}

// IsValid reports whether value satisfies the predicate.
func (p Predicate[T]) IsValid(value T) bool {
	return p.check(value)
}

// Message returns the failure message fixed at construction.
func (p Predicate[T]) Message() string {
	return p.message
}

// Name returns the stable identifier of the rule (e.g. "range", "luhn").
func (p Predicate[T]) Name() string {
	return p.name
}

// Custom wraps a caller-supplied predicate. The message is mandatory.
func Custom[T any](check func(T) bool, message string) Predicate[T] {
	return Predicate[T]{name: "custom", check: check, message: message}
}

// newPredicate builds a Predicate whose message is the first non-empty
// override in msg, or def when none is given.
func newPredicate[T any](name string, check func(T) bool, def string, msg []string) Predicate[T] {
	return Predicate[T]{name: name, check: check, message: pick(msg, def)}
}

func pick(msg []string, def string) string {
	for _, m := range msg {
		if m != "" {
			return m
		}
	}
	return def
}

// Integer is the set of integer types, signed and unsigned.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is the set of floating-point types.
type Float interface {
	~float32 | ~float64
}

// Numeric is every type that supports ordering and arithmetic.
type Numeric interface {
	Integer | Float
}

// Dated is satisfied by values that carry a calendar date:
// [time.Time] and [models.Date].
type Dated interface {
	Date() (year int, month time.Month, day int)
}

// Timed is satisfied by values that carry a wall-clock reading:
// [time.Time] and [models.TimeOfDay].
type Timed interface {
	Clock() (hour, minute, second int)
}

// Clock supplies the current time to rules that compare against "now".
// [clockz.RealClock] and [clockz.FakeClock] both satisfy it.
type Clock interface {
	Now() time.Time
}

// DefaultClock is used by the time-relative rules that are built without
// an explicit Clock.
var DefaultClock Clock = clockz.RealClock
