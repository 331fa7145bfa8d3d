// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prompt

import (
	"bytes"
	"io"
	"net/netip"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-input-guard/console"
	"github.com/MKhiriev/go-input-guard/internal/config"
	"github.com/MKhiriev/go-input-guard/models"
)

// useConsole installs a plain console reading input and returns its output.
func useConsole(t *testing.T, input string) *bytes.Buffer {
	t.Helper()
	var out bytes.Buffer
	c := console.New(strings.NewReader(input), &out, console.WithColor(false))
	t.Cleanup(func() { _ = c.Close() })
	SetDefault(c, c)
	return &out
}

// ── GetX ──

func TestGetInt_RetriesUntilValid(t *testing.T) {
	out := useConsole(t, "abc\n\n42\n")

	got, err := GetInt("Age")

	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 1, strings.Count(out.String(), "Please enter a valid integer"))
	assert.Equal(t, 2, strings.Count(out.String(), "Age: "))
}

func TestGetX_Plain(t *testing.T) {
	useConsole(t, strings.Join([]string{
		"-7",
		"18446744073709551615",
		"2.5",
		"hello",
		"yes",
		"2024-02-29",
		"14:30",
		"1h30m",
		"10.0.0.1",
		"https://example.com/a",
		"x",
	}, "\n")+"\n")

	i64, err := GetInt64("i64")
	require.NoError(t, err)
	assert.Equal(t, int64(-7), i64)

	u, err := GetUint("uint")
	require.NoError(t, err)
	assert.Equal(t, ^uint(0), u)

	f, err := GetFloat("float")
	require.NoError(t, err)
	assert.InDelta(t, 2.5, f, 1e-9)

	s, err := GetString("string")
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	b, err := GetBool("bool")
	require.NoError(t, err)
	assert.True(t, b)

	d, err := GetDate("date")
	require.NoError(t, err)
	assert.Equal(t, models.NewDate(2024, time.February, 29), d)

	tod, err := GetTimeOfDay("time")
	require.NoError(t, err)
	assert.Equal(t, models.NewTimeOfDay(14, 30, 0), tod)

	dur, err := GetDuration("duration")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, dur)

	ip, err := GetIP("ip")
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("10.0.0.1"), ip)

	uri, err := GetURL("url")
	require.NoError(t, err)
	assert.Equal(t, "example.com", uri.Host)

	r, err := GetRune("rune")
	require.NoError(t, err)
	assert.Equal(t, 'x', r)
}

func TestGetUUID(t *testing.T) {
	useConsole(t, "not-a-guid\n\n6ba7b810-9dad-11d1-80b4-00c04fd430c8\n")

	got, err := GetUUID("ID")

	require.NoError(t, err)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", got.String())
}

func TestGetDateTime(t *testing.T) {
	useConsole(t, "2024-03-01 09:15\n")

	got, err := GetDateTime("When")

	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, time.March, 1, 9, 15, 0, 0, time.Local)))
}

type color int

const (
	red color = iota + 1
	green
)

// TestGetEnum_OnlyDefined verifies that an undefined numeric value is
// rejected by the implicit defined-value rule.
func TestGetEnum_OnlyDefined(t *testing.T) {
	out := useConsole(t, "7\n\ngreen\n")

	got, err := GetEnum("Color", map[string]color{"red": red, "green": green})

	require.NoError(t, err)
	assert.Equal(t, green, got)
	assert.Contains(t, out.String(), "Value must be a defined option")
}

func TestGetX_EndOfInput(t *testing.T) {
	useConsole(t, "")

	_, err := GetString("Name")
	require.ErrorIs(t, err, io.EOF)
}

// ── ForX ──

func TestForInt_Chain(t *testing.T) {
	out := useConsole(t, "15\n\n7\n\n8\n")

	got, err := ForInt("Even under ten").WithMax(10).WithEven().Get()

	require.NoError(t, err)
	assert.Equal(t, 8, got)
	assert.Contains(t, out.String(), "Value must be at most 10")
	assert.Contains(t, out.String(), "Value must be even")
}

func TestForString_Chain(t *testing.T) {
	out := useConsole(t, "a\n\nabc\n")

	got, err := ForString("Code").WithLength(2, 5).Get()

	require.NoError(t, err)
	assert.Equal(t, "abc", got)
	assert.Contains(t, out.String(), "Input must be between 2 and 5 characters long")
}

// ── defaults ──

func TestNewCollectors_LineMode(t *testing.T) {
	cfg := config.Default()
	cfg.Log.File = filepath.Join(t.TempDir(), "guard.log")

	c, err := newCollectors(cfg, strings.NewReader(""), io.Discard)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.close() })

	assert.IsType(t, &console.Console{}, c.in)
	assert.IsType(t, &console.Console{}, c.out)
	assert.Len(t, c.opts, 1)
	assert.FileExists(t, cfg.Log.File)
}

func TestNewCollectors_TUIMode(t *testing.T) {
	cfg := config.Default()
	cfg.Console.InputMode = config.InputModeTUI

	c, err := newCollectors(cfg, strings.NewReader(""), io.Discard)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.close() })

	assert.IsType(t, &console.TUIInput{}, c.in)
	assert.IsType(t, &console.Console{}, c.out)
}

func TestNewCollectors_BadLogLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "loud"

	_, err := newCollectors(cfg, strings.NewReader(""), io.Discard)
	require.Error(t, err)
}

func TestLoadFromEnv_UnwritableLogFileFallsBack(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("INPUTGUARD_LOG_FILE", filepath.Join(t.TempDir(), "missing", "guard.log"))
	var warn bytes.Buffer

	c := loadFromEnv(strings.NewReader("7\n"), io.Discard, &warn)

	require.NotNil(t, c)
	assert.IsType(t, &console.Console{}, c.in)
	assert.Empty(t, c.opts)
	assert.Contains(t, warn.String(), "using plain console")
	require.NoError(t, c.close())
}

func TestLoadFromEnv_BadConfigUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("INPUTGUARD_LOG_LEVEL", "loud")
	var warn bytes.Buffer

	c := loadFromEnv(strings.NewReader(""), io.Discard, &warn)

	require.NotNil(t, c)
	assert.Len(t, c.opts, 1)
	assert.Contains(t, warn.String(), "using default configuration")
	require.NoError(t, c.close())
}

// TestClose_ReleasesOwnedCollectors verifies that Close reaches the log file
// of collectors built by the package, that repeated calls are harmless and
// that replacing them with SetDefault closes them too.
func TestClose_ReleasesOwnedCollectors(t *testing.T) {
	cfg := config.Default()
	cfg.Log.File = filepath.Join(t.TempDir(), "guard.log")
	c, err := newCollectors(cfg, strings.NewReader(""), io.Discard)
	require.NoError(t, err)

	calls := 0
	inner := c.close
	c.close = func() error { calls++; return inner() }
	install(c)

	require.NoError(t, Close())
	useConsole(t, "")
	assert.Equal(t, 2, calls)
	require.NoError(t, Close())
}
