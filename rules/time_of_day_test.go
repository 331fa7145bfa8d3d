// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-input-guard/models"
)

func tod(h, m, s int) models.TimeOfDay { return models.NewTimeOfDay(h, m, s) }

// TestBusinessHours verifies that both ends of 09:00-17:00 are inclusive.
func TestBusinessHours(t *testing.T) {
	r := BusinessHours[models.TimeOfDay]()

	assert.True(t, r.IsValid(tod(9, 0, 0)))
	assert.True(t, r.IsValid(tod(17, 0, 0)))
	assert.True(t, r.IsValid(tod(12, 30, 0)))
	assert.False(t, r.IsValid(tod(8, 59, 59)))
	assert.False(t, r.IsValid(tod(17, 0, 1)))
	assert.Equal(t, "Time must be within business hours (09:00-17:00)", r.Message())
}

func TestBusinessHours_DateTime(t *testing.T) {
	r := BusinessHours[time.Time]()

	assert.True(t, r.IsValid(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))
	assert.False(t, r.IsValid(time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)))
}

func TestBeforeAfterTime(t *testing.T) {
	before := BeforeTime[models.TimeOfDay](tod(12, 0, 0))
	after := AfterTime[models.TimeOfDay](tod(12, 0, 0))

	assert.True(t, before.IsValid(tod(11, 59, 59)))
	assert.False(t, before.IsValid(tod(12, 0, 0)), "bound is exclusive")
	assert.True(t, after.IsValid(tod(12, 0, 1)))
	assert.False(t, after.IsValid(tod(12, 0, 0)), "bound is exclusive")
	assert.Equal(t, "Time must be before 12:00:00", before.Message())
	assert.Equal(t, "Time must be after 12:00:00", after.Message())
}

func TestClockShapeRules(t *testing.T) {
	tests := []struct {
		name  string
		rule  Predicate[models.TimeOfDay]
		value models.TimeOfDay
		want  bool
	}{
		{name: "in hour", rule: InHour[models.TimeOfDay](14), value: tod(14, 59, 59), want: true},
		{name: "other hour", rule: InHour[models.TimeOfDay](14), value: tod(15, 0, 0), want: false},
		{name: "on the hour", rule: OnTheHour[models.TimeOfDay](), value: tod(8, 0, 0), want: true},
		{name: "not on the hour", rule: OnTheHour[models.TimeOfDay](), value: tod(8, 0, 1), want: false},
		{name: "on the minute", rule: OnTheMinute[models.TimeOfDay](), value: tod(8, 15, 0), want: true},
		{name: "not on the minute", rule: OnTheMinute[models.TimeOfDay](), value: tod(8, 15, 30), want: false},
		{name: "quarter hour", rule: MinuteIncrement[models.TimeOfDay](15), value: tod(8, 45, 0), want: true},
		{name: "off quarter", rule: MinuteIncrement[models.TimeOfDay](15), value: tod(8, 40, 0), want: false},
		{name: "quarter with seconds", rule: MinuteIncrement[models.TimeOfDay](15), value: tod(8, 45, 1), want: false},
		{name: "am", rule: AM[models.TimeOfDay](), value: tod(11, 59, 59), want: true},
		{name: "noon is not am", rule: AM[models.TimeOfDay](), value: tod(12, 0, 0), want: false},
		{name: "noon is pm", rule: PM[models.TimeOfDay](), value: tod(12, 0, 0), want: true},
		{name: "midnight", rule: Midnight[models.TimeOfDay](), value: tod(0, 0, 0), want: true},
		{name: "after midnight", rule: Midnight[models.TimeOfDay](), value: tod(0, 0, 1), want: false},
		{name: "noon", rule: Noon[models.TimeOfDay](), value: tod(12, 0, 0), want: true},
		{name: "not noon", rule: Noon[models.TimeOfDay](), value: tod(12, 1, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.IsValid(tt.value))
		})
	}
}
