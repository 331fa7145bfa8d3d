// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validator

import (
	"net/netip"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-input-guard/models"
)

// ── numbers ──

func TestParseInteger(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "42", want: 42},
		{raw: " -7 ", want: -7},
		{raw: "+3", want: 3},
		{raw: "", wantErr: true},
		{raw: "4.2", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "1_000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseInteger[int](tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "Please enter a valid integer", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestParseInteger_BitSize verifies that values outside the target type's
// range are rejected instead of wrapping.
func TestParseInteger_BitSize(t *testing.T) {
	_, err := ParseInteger[int8]("128")
	require.Error(t, err)

	v, err := ParseInteger[int8]("-128")
	require.NoError(t, err)
	assert.Equal(t, int8(-128), v)

	_, err = ParseInteger[uint8]("256")
	require.Error(t, err)

	_, err = ParseInteger[uint]("-1")
	require.Error(t, err)

	u, err := ParseInteger[uint64]("18446744073709551615")
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), u)
}

func TestParseFloat(t *testing.T) {
	v, err := ParseFloat[float64]("3.25")
	require.NoError(t, err)
	assert.InDelta(t, 3.25, v, 1e-9)

	v, err = ParseFloat[float64]("-1e3")
	require.NoError(t, err)
	assert.InDelta(t, -1000, v, 1e-9)

	for _, raw := range []string{"", "NaN", "Inf", "1,5", "abc"} {
		_, err := ParseFloat[float64](raw)
		require.Error(t, err, raw)
		assert.Equal(t, "Please enter a valid number", err.Error())
	}

	_, err = ParseFloat[float32]("1e39")
	require.Error(t, err, "overflows float32")
}

// ── text ──

func TestParseString(t *testing.T) {
	v, err := ParseString("hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", v)

	_, err = ParseString("   ")
	require.EqualError(t, err, "Input cannot be empty")
}

func TestParseBool(t *testing.T) {
	for _, raw := range []string{"y", "YES", "true", "On", "1"} {
		v, err := ParseBool(raw)
		require.NoError(t, err, raw)
		assert.True(t, v, raw)
	}
	for _, raw := range []string{"n", "No", "FALSE", "off", "0"} {
		v, err := ParseBool(raw)
		require.NoError(t, err, raw)
		assert.False(t, v, raw)
	}
	_, err := ParseBool("maybe")
	require.EqualError(t, err, "Please enter yes or no")
}

func TestParseRune(t *testing.T) {
	r, err := ParseRune("ж")
	require.NoError(t, err)
	assert.Equal(t, 'ж', r)

	_, err = ParseRune("ab")
	require.EqualError(t, err, "Please enter a single character")
	_, err = ParseRune("")
	require.Error(t, err)
}

// ── dates and times ──

func TestParseDateTime_ExactLayout(t *testing.T) {
	parse := ParseDateTime("02/01/2006 15:04")

	v, err := parse("17/10/2026 09:30")
	require.NoError(t, err)
	assert.True(t, time.Date(2026, time.October, 17, 9, 30, 0, 0, time.Local).Equal(v))

	_, err = parse("2026-10-17 09:30")
	require.EqualError(t, err, "Please enter a valid date and time in the format 02/01/2006 15:04")
}

func TestParseDateTime_AnyLayout(t *testing.T) {
	parse := ParseDateTime("")

	for _, raw := range []string{"2026-10-17T09:30:00Z", "2026-10-17 09:30", "2026-10-17", "10/17/2026"} {
		v, err := parse(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, 2026, v.Year(), raw)
	}

	_, err := parse("yesterday")
	require.EqualError(t, err, "Please enter a valid date and time")
}

func TestParseDate(t *testing.T) {
	want := models.NewDate(2026, time.October, 17)

	for _, raw := range []string{"2026-10-17", "10/17/2026", "17.10.2026", "Oct 17, 2026"} {
		v, err := ParseDate("")(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, v, raw)
	}

	_, err := ParseDate(models.DateLayout)("10/17/2026")
	require.EqualError(t, err, "Please enter a valid date in the format 2006-01-02")
}

func TestParseTimeOfDay(t *testing.T) {
	tests := map[string]models.TimeOfDay{
		"09:30:15": models.NewTimeOfDay(9, 30, 15),
		"17:45":    models.NewTimeOfDay(17, 45, 0),
		"2:15 PM":  models.NewTimeOfDay(14, 15, 0),
		"7AM":      models.NewTimeOfDay(7, 0, 0),
	}
	for raw, want := range tests {
		v, err := ParseTimeOfDay("")(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, v, raw)
	}

	_, err := ParseTimeOfDay("")("25:00")
	require.EqualError(t, err, "Please enter a valid time")
}

func TestParseDuration(t *testing.T) {
	tests := map[string]time.Duration{
		"1h30m":      90 * time.Minute,
		"45s":        45 * time.Second,
		"01:30":      90 * time.Minute,
		"02:00:30":   2*time.Hour + 30*time.Second,
		"1.02:00:00": 26 * time.Hour,
		"-00:15":     -15 * time.Minute,

		"2562047:00:00": 2562047 * time.Hour,
	}
	for raw, want := range tests {
		v, err := ParseDuration(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, v, raw)
	}

	for _, raw := range []string{"", "soon", "1:75", "12"} {
		_, err := ParseDuration(raw)
		require.Error(t, err, raw)
	}
}

// TestParseDuration_Overflow verifies that clock notation beyond the range
// of time.Duration is a parse failure rather than a wrapped value.
func TestParseDuration_Overflow(t *testing.T) {
	for _, raw := range []string{
		"99999999999999999999:00",
		"200000.00:00:00",
		"-200000.00:00:00",
		"2562048:00:00",
		"106751.23:47:17",
	} {
		v, err := ParseDuration(raw)
		require.EqualError(t, err, "Please enter a valid duration (e.g. 1h30m or 01:30:00)", raw)
		assert.Zero(t, v, raw)
	}
}

// ── identifiers and addresses ──

func TestParseUUID(t *testing.T) {
	const canonical = "f47ac10b-58cc-4372-a567-0e02b2c3d479"
	want := uuid.MustParse(canonical)

	for _, raw := range []string{canonical, "{" + canonical + "}", "urn:uuid:" + canonical, "f47ac10b58cc4372a5670e02b2c3d479"} {
		v, err := ParseUUID(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, v, raw)
	}

	_, err := ParseUUID("not-a-guid")
	require.EqualError(t, err, "Please enter a valid GUID")
}

func TestParseAddr(t *testing.T) {
	v, err := ParseAddr("192.168.1.10")
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("192.168.1.10"), v)

	v, err = ParseAddr("2001:db8::1")
	require.NoError(t, err)
	assert.True(t, v.Is6())

	_, err = ParseAddr("300.1.1.1")
	require.EqualError(t, err, "Please enter a valid IP address")
}

func TestParseURL(t *testing.T) {
	u, err := ParseURL("https://example.com:8443/a?b=c#d")
	require.NoError(t, err)
	assert.Equal(t, "example.com", u.Hostname())
	assert.Equal(t, "8443", u.Port())

	_, err = ParseURL("http://exa mple.com")
	require.EqualError(t, err, "Please enter a valid URI")
	_, err = ParseURL("")
	require.Error(t, err)
	_, err = ParseURL("http://[::1")
	require.Error(t, err)
}

// ── enums ──

type weekdayFlag uint8

const (
	monday weekdayFlag = 1 << iota
	tuesday
	wednesday
)

var weekdayMembers = map[string]weekdayFlag{
	"Monday":    monday,
	"Tuesday":   tuesday,
	"Wednesday": wednesday,
}

func TestParseEnum(t *testing.T) {
	parse := ParseEnum(weekdayMembers)

	v, err := parse("tuesday")
	require.NoError(t, err)
	assert.Equal(t, tuesday, v)

	v, err = parse("4")
	require.NoError(t, err)
	assert.Equal(t, wednesday, v)

	v, err = parse("Monday, WEDNESDAY")
	require.NoError(t, err)
	assert.Equal(t, monday|wednesday, v)

	_, err = parse("Friday")
	require.EqualError(t, err, "Please enter one of: Monday, Tuesday, Wednesday")
}

func TestEnumNames_OrderedByValue(t *testing.T) {
	names := EnumNames(map[string]int{"High": 3, "Low": 1, "Mid": 2, "Medium": 2})
	assert.Equal(t, []string{"Low", "Medium", "Mid", "High"}, names)
}

// TestParseError_Unwrap verifies that the underlying cause stays reachable.
func TestParseError_Unwrap(t *testing.T) {
	_, err := ParseInteger[int]("")

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.ErrorIs(t, err, errBlank)
}
