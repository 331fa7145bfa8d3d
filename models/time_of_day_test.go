// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeOfDay_WrapsDay(t *testing.T) {
	assert.Equal(t, TimeOfDay{Hour: 1}, NewTimeOfDay(25, 0, 0))
	assert.Equal(t, TimeOfDay{Hour: 10, Minute: 1, Second: 5}, NewTimeOfDay(10, 0, 65))
}

func TestParseTimeOfDay(t *testing.T) {
	v, err := ParseTimeOfDay(TimeOfDayLayout, "09:05:30")
	require.NoError(t, err)
	assert.Equal(t, NewTimeOfDay(9, 5, 30), v)
	assert.Equal(t, "09:05:30", v.String())

	v, err = ParseTimeOfDay("3:04PM", "2:15PM")
	require.NoError(t, err)
	assert.Equal(t, NewTimeOfDay(14, 15, 0), v)

	_, err = ParseTimeOfDay(TimeOfDayLayout, "25:00:00")
	require.ErrorIs(t, err, ErrInvalidTimeOfDay)
}

func TestTimeOfDay_Compare(t *testing.T) {
	morning := NewTimeOfDay(9, 0, 0)
	evening := NewTimeOfDay(18, 30, 0)

	assert.True(t, morning.Before(evening))
	assert.True(t, evening.After(morning))
	assert.Equal(t, 0, morning.Compare(NewTimeOfDay(9, 0, 0)))
	assert.Equal(t, 9*3600, morning.Seconds())
}

func TestTimeOfDayOf(t *testing.T) {
	ts := time.Date(2026, time.October, 17, 23, 59, 58, 999, time.UTC)
	h, m, s := TimeOfDayOf(ts).Clock()

	assert.Equal(t, []int{23, 59, 58}, []int{h, m, s})
}
