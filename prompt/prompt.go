// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prompt

import (
	"net/netip"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-input-guard/builder"
	"github.com/MKhiriev/go-input-guard/models"
	"github.com/MKhiriev/go-input-guard/rules"
)

// GetInt reads an int.
func GetInt(prompt string) (int, error) { return ForInt(prompt).Get() }

// GetInt64 reads an int64.
func GetInt64(prompt string) (int64, error) { return ForInt64(prompt).Get() }

// GetUint reads a uint.
func GetUint(prompt string) (uint, error) { return ForUint(prompt).Get() }

// GetFloat reads a finite float64.
func GetFloat(prompt string) (float64, error) { return ForFloat(prompt).Get() }

// GetString reads a non-blank string.
func GetString(prompt string) (string, error) { return ForString(prompt).Get() }

// GetBool reads a yes/no answer.
func GetBool(prompt string) (bool, error) { return ForBool(prompt).Get() }

// GetDateTime reads a date and time in any of validator.DateTimeLayouts.
func GetDateTime(prompt string) (time.Time, error) { return ForDateTime(prompt, "").Get() }

// GetDate reads a calendar date in any of validator.DateLayouts.
func GetDate(prompt string) (models.Date, error) { return ForDate(prompt, "").Get() }

// GetTimeOfDay reads a time of day in any of validator.TimeOfDayLayouts.
func GetTimeOfDay(prompt string) (models.TimeOfDay, error) { return ForTimeOfDay(prompt, "").Get() }

// GetDuration reads a duration such as 1h30m or 01:30:00.
func GetDuration(prompt string) (time.Duration, error) { return ForDuration(prompt).Get() }

// GetUUID reads a GUID.
func GetUUID(prompt string) (uuid.UUID, error) { return ForUUID(prompt).Get() }

// GetIP reads an IPv4 or IPv6 address.
func GetIP(prompt string) (netip.Addr, error) { return ForIP(prompt).Get() }

// GetURL reads an absolute or relative URI.
func GetURL(prompt string) (*url.URL, error) { return ForURL(prompt).Get() }

// GetRune reads a single character.
func GetRune(prompt string) (rune, error) { return ForRune(prompt).Get() }

// GetEnum reads one of members by name or value. Only defined values are
// accepted.
func GetEnum[T rules.Integer](prompt string, members map[string]T) (T, error) {
	return ForEnum(prompt, members).WithDefined().Get()
}

// ForInt returns a builder for int values.
func ForInt(prompt string) *builder.IntegerBuilder[int] { return ForInteger[int](prompt) }

// ForInt64 returns a builder for int64 values.
func ForInt64(prompt string) *builder.IntegerBuilder[int64] { return ForInteger[int64](prompt) }

// ForUint returns a builder for uint values.
func ForUint(prompt string) *builder.IntegerBuilder[uint] { return ForInteger[uint](prompt) }

// ForInteger returns a builder for any integer type.
func ForInteger[T rules.Integer](prompt string) *builder.IntegerBuilder[T] {
	c := current()
	return builder.NewInteger[T](prompt, c.in, c.out, c.opts...)
}

// ForFloat returns a builder for float64 values.
func ForFloat(prompt string) *builder.NumberBuilder[float64] { return ForNumber[float64](prompt) }

// ForNumber returns a builder for any floating-point type.
func ForNumber[T rules.Float](prompt string) *builder.NumberBuilder[T] {
	c := current()
	return builder.NewFloat[T](prompt, c.in, c.out, c.opts...)
}

// ForString returns a builder for non-blank strings.
func ForString(prompt string) *builder.StringBuilder {
	c := current()
	return builder.NewString(prompt, c.in, c.out, c.opts...)
}

// ForBool returns a builder for yes/no answers.
func ForBool(prompt string) *builder.BoolBuilder {
	c := current()
	return builder.NewBool(prompt, c.in, c.out, c.opts...)
}

// ForDateTime returns a builder for dates with times. An empty layout
// accepts any of validator.DateTimeLayouts.
func ForDateTime(prompt, layout string) *builder.DateTimeBuilder {
	c := current()
	return builder.NewDateTime(prompt, layout, c.in, c.out, c.opts...)
}

// ForDate returns a builder for calendar dates.
func ForDate(prompt, layout string) *builder.DateBuilder {
	c := current()
	return builder.NewDate(prompt, layout, c.in, c.out, c.opts...)
}

// ForTimeOfDay returns a builder for times of day.
func ForTimeOfDay(prompt, layout string) *builder.TimeOfDayBuilder {
	c := current()
	return builder.NewTimeOfDay(prompt, layout, c.in, c.out, c.opts...)
}

// ForDuration returns a builder for durations.
func ForDuration(prompt string) *builder.DurationBuilder {
	c := current()
	return builder.NewDuration(prompt, c.in, c.out, c.opts...)
}

// ForUUID returns a builder for GUIDs.
func ForUUID(prompt string) *builder.UUIDBuilder {
	c := current()
	return builder.NewUUID(prompt, c.in, c.out, c.opts...)
}

// ForIP returns a builder for IP addresses.
func ForIP(prompt string) *builder.IPBuilder {
	c := current()
	return builder.NewIP(prompt, c.in, c.out, c.opts...)
}

// ForURL returns a builder for URIs.
func ForURL(prompt string) *builder.URLBuilder {
	c := current()
	return builder.NewURL(prompt, c.in, c.out, c.opts...)
}

// ForRune returns a builder for single characters.
func ForRune(prompt string) *builder.RuneBuilder {
	c := current()
	return builder.NewRune(prompt, c.in, c.out, c.opts...)
}

// ForEnum returns a builder for enumerations named by members.
func ForEnum[T rules.Integer](prompt string, members map[string]T) *builder.EnumBuilder[T] {
	c := current()
	return builder.NewEnum(prompt, members, c.in, c.out, c.opts...)
}
