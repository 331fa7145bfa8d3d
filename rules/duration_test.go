// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationRules(t *testing.T) {
	tests := []struct {
		name  string
		rule  Predicate[time.Duration]
		value time.Duration
		want  bool
	}{
		{name: "positive", rule: PositiveDuration(), value: time.Nanosecond, want: true},
		{name: "zero is not positive", rule: PositiveDuration(), value: 0, want: false},
		{name: "max inclusive", rule: MaxDuration(time.Hour), value: time.Hour, want: true},
		{name: "over max", rule: MaxDuration(time.Hour), value: time.Hour + time.Second, want: false},
		{name: "min inclusive", rule: MinDuration(time.Minute), value: time.Minute, want: true},
		{name: "under min", rule: MinDuration(time.Minute), value: 59 * time.Second, want: false},
		{name: "working hours", rule: WorkingHours(8), value: 8 * time.Hour, want: true},
		{name: "overtime", rule: WorkingHours(8), value: 8*time.Hour + time.Minute, want: false},
		{name: "negative working time", rule: WorkingHours(8), value: -time.Hour, want: false},
		{name: "whole hours", rule: WholeHours(), value: 3 * time.Hour, want: true},
		{name: "partial hour", rule: WholeHours(), value: 90 * time.Minute, want: false},
		{name: "whole minutes", rule: WholeMinutes(), value: 90 * time.Minute, want: true},
		{name: "partial minute", rule: WholeMinutes(), value: 90 * time.Second, want: false},
		{name: "increment", rule: DurationIncrement(15 * time.Minute), value: 45 * time.Minute, want: true},
		{name: "off increment", rule: DurationIncrement(15 * time.Minute), value: 50 * time.Minute, want: false},
		{name: "one day", rule: WithinOneDay(), value: 24 * time.Hour, want: true},
		{name: "minus one day", rule: WithinOneDay(), value: -24 * time.Hour, want: true},
		{name: "over a day", rule: WithinOneDay(), value: 25 * time.Hour, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.IsValid(tt.value))
		})
	}
}

func TestDurationMessages(t *testing.T) {
	assert.Equal(t, "Duration must not exceed 1h30m0s", MaxDuration(90*time.Minute).Message())
	assert.Equal(t, "Duration must be at least 1m0s", MinDuration(time.Minute).Message())
	assert.Equal(t, "Duration must not exceed 8 working hours", WorkingHours(8).Message())
	assert.Equal(t, "Duration must be in increments of 15m0s", DurationIncrement(15*time.Minute).Message())
}
