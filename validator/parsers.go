// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validator

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"net/netip"
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-input-guard/models"
	"github.com/MKhiriev/go-input-guard/rules"
)

const (
	msgInteger   = "Please enter a valid integer"
	msgNumber    = "Please enter a valid number"
	msgEmpty     = "Input cannot be empty"
	msgBool      = "Please enter yes or no"
	msgDateTime  = "Please enter a valid date and time"
	msgDate      = "Please enter a valid date"
	msgTime      = "Please enter a valid time"
	msgDuration  = "Please enter a valid duration (e.g. 1h30m or 01:30:00)"
	msgUUID      = "Please enter a valid GUID"
	msgAddr      = "Please enter a valid IP address"
	msgURL       = "Please enter a valid URI"
	msgRune      = "Please enter a single character"
	formatSuffix = " in the format %s"
)

var errBlank = errors.New("blank input")

// Layouts tried, in order, when a date or time parser has no explicit layout.
var (
	DateTimeLayouts = []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		"2006-01-02",
		"01/02/2006 15:04:05",
		"01/02/2006 15:04",
		"01/02/2006",
		"02.01.2006 15:04",
		"02.01.2006",
		time.RFC1123,
		time.RFC1123Z,
		"Jan 2, 2006 3:04 PM",
		"Jan 2, 2006",
	}

	DateLayouts = []string{
		models.DateLayout,
		"01/02/2006",
		"02.01.2006",
		"2006/01/02",
		"Jan 2, 2006",
		"January 2, 2006",
		"2 Jan 2006",
		"2 January 2006",
	}

	TimeOfDayLayouts = []string{
		models.TimeOfDayLayout,
		"15:04",
		"3:04:05 PM",
		"3:04:05PM",
		"3:04 PM",
		"3:04PM",
		"3 PM",
		"3PM",
	}
)

// clockDuration matches [-][d.]hh:mm[:ss].
var clockDuration = regexp.MustCompile(`^(-)?(?:(\d+)\.)?(\d+):([0-5]?\d)(?::([0-5]?\d))?$`)

// ParseInteger parses a base-10 integer that fits in T.
func ParseInteger[T rules.Integer](raw string) (T, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, parseError(msgInteger, errBlank)
	}

	if signed[T]() {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, parseError(msgInteger, err)
		}
		v := T(n)
		if int64(v) != n {
			return 0, parseError(msgInteger, strconv.ErrRange)
		}
		return v, nil
	}

	if strings.HasPrefix(s, "-") {
		return 0, parseError(msgInteger, strconv.ErrRange)
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64)
	if err != nil {
		return 0, parseError(msgInteger, err)
	}
	v := T(n)
	if uint64(v) != n {
		return 0, parseError(msgInteger, strconv.ErrRange)
	}
	return v, nil
}

// ParseFloat parses a finite decimal number that fits in T.
func ParseFloat[T rules.Float](raw string) (T, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, parseError(msgNumber, errBlank)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, parseError(msgNumber, err)
	}
	v := T(f)
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		return 0, parseError(msgNumber, strconv.ErrRange)
	}
	return v, nil
}

// ParseString accepts any input that is not blank.
func ParseString(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", parseError(msgEmpty, errBlank)
	}
	return raw, nil
}

// ParseBool accepts true/false, yes/no, y/n, on/off and 1/0, ignoring case.
func ParseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes", "true", "t", "on", "1":
		return true, nil
	case "n", "no", "false", "f", "off", "0":
		return false, nil
	}
	return false, parseError(msgBool, strconv.ErrSyntax)
}

// ParseDateTime returns a parser for date-times. A non-empty layout must
// match exactly; otherwise every layout in DateTimeLayouts is tried.
// Values without a zone are read in the local time zone.
func ParseDateTime(layout string) ParseFunc[time.Time] {
	return func(raw string) (time.Time, error) {
		return parseWithLayouts(raw, layout, DateTimeLayouts, msgDateTime,
			func(l, s string) (time.Time, error) { return time.ParseInLocation(l, s, time.Local) })
	}
}

// ParseDate returns a parser for calendar dates. See ParseDateTime for the
// layout rules; the fallback list is DateLayouts.
func ParseDate(layout string) ParseFunc[models.Date] {
	return func(raw string) (models.Date, error) {
		return parseWithLayouts(raw, layout, DateLayouts, msgDate, models.ParseDate)
	}
}

// ParseTimeOfDay returns a parser for wall-clock times. See ParseDateTime
// for the layout rules; the fallback list is TimeOfDayLayouts.
func ParseTimeOfDay(layout string) ParseFunc[models.TimeOfDay] {
	return func(raw string) (models.TimeOfDay, error) {
		return parseWithLayouts(raw, layout, TimeOfDayLayouts, msgTime, models.ParseTimeOfDay)
	}
}

func parseWithLayouts[T any](raw, layout string, fallback []string, msg string, parse func(layout, s string) (T, error)) (T, error) {
	var zero T
	s := strings.TrimSpace(raw)

	if layout != "" {
		msg += fmt.Sprintf(formatSuffix, layout)
		if s == "" {
			return zero, parseError(msg, errBlank)
		}
		v, err := parse(layout, s)
		if err != nil {
			return zero, parseError(msg, err)
		}
		return v, nil
	}

	if s == "" {
		return zero, parseError(msg, errBlank)
	}
	var errs []error
	for _, l := range fallback {
		v, err := parse(l, s)
		if err == nil {
			return v, nil
		}
		errs = append(errs, err)
	}
	return zero, parseError(msg, errors.Join(errs...))
}

// ParseDuration accepts Go duration syntax ("1h30m", "90s") and clock
// notation "[-][d.]hh:mm[:ss]" ("01:30", "1.02:00:00").
func ParseDuration(raw string) (time.Duration, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, parseError(msgDuration, errBlank)
	}

	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}

	m := clockDuration.FindStringSubmatch(s)
	if m == nil {
		return 0, parseError(msgDuration, strconv.ErrSyntax)
	}

	var total int64
	parts := []struct {
		text string
		unit time.Duration
	}{
		{m[2], 24 * time.Hour},
		{m[3], time.Hour},
		{m[4], time.Minute},
		{m[5], time.Second},
	}
	for _, p := range parts {
		if p.text == "" {
			continue
		}
		n, err := strconv.ParseInt(p.text, 10, 64)
		if err != nil {
			return 0, parseError(msgDuration, err)
		}
		if n > (math.MaxInt64-total)/int64(p.unit) {
			return 0, parseError(msgDuration, strconv.ErrRange)
		}
		total += n * int64(p.unit)
	}

	d := time.Duration(total)
	if m[1] == "-" {
		d = -d
	}
	return d, nil
}

// ParseUUID accepts the canonical, braced, URN and hex-only GUID forms.
func ParseUUID(raw string) (uuid.UUID, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return uuid.Nil, parseError(msgUUID, errBlank)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, parseError(msgUUID, err)
	}
	return id, nil
}

// ParseAddr accepts IPv4 and IPv6 addresses.
func ParseAddr(raw string) (netip.Addr, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return netip.Addr{}, parseError(msgAddr, errBlank)
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, parseError(msgAddr, err)
	}
	return addr, nil
}

// ParseURL accepts absolute and relative URIs. Whitespace inside the
// input is rejected.
func ParseURL(raw string) (*url.URL, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, parseError(msgURL, errBlank)
	}
	if strings.ContainsAny(s, " \t") {
		return nil, parseError(msgURL, strconv.ErrSyntax)
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, parseError(msgURL, err)
	}
	return u, nil
}

// ParseRune accepts exactly one character.
func ParseRune(raw string) (rune, error) {
	if utf8.RuneCountInString(raw) != 1 {
		return 0, parseError(msgRune, strconv.ErrSyntax)
	}
	r, _ := utf8.DecodeRuneInString(raw)
	if r == utf8.RuneError {
		return 0, parseError(msgRune, strconv.ErrSyntax)
	}
	return r, nil
}

// ParseEnum returns a parser for the enumeration described by members
// (name to value). Input may be a member name in any case, a numeric value
// or a comma-separated list of both, whose values are OR'ed together for
// bit-flag enumerations.
func ParseEnum[T rules.Integer](members map[string]T) ParseFunc[T] {
	lookup := make(map[string]T, len(members))
	for name, v := range members {
		lookup[strings.ToLower(name)] = v
	}
	msg := "Please enter one of: " + strings.Join(EnumNames(members), ", ")

	return func(raw string) (T, error) {
		s := strings.TrimSpace(raw)
		if s == "" {
			return 0, parseError(msg, errBlank)
		}

		var result T
		for part := range strings.SplitSeq(s, ",") {
			part = strings.TrimSpace(part)
			if v, ok := lookup[strings.ToLower(part)]; ok {
				result |= v
				continue
			}
			v, err := ParseInteger[T](part)
			if err != nil {
				return 0, parseError(msg, err)
			}
			result |= v
		}
		return result, nil
	}
}

// EnumNames returns the member names ordered by value, then by name.
func EnumNames[T rules.Integer](members map[string]T) []string {
	names := make([]string, 0, len(members))
	for name := range members {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		if c := cmp.Compare(members[a], members[b]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return names
}

func signed[T rules.Integer]() bool {
	var zero T
	return zero-1 < zero
}
