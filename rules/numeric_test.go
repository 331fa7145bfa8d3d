// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ── bounds ──

func TestRange(t *testing.T) {
	r := Range(1, 10)

	assert.True(t, r.IsValid(1), "lower bound is inclusive")
	assert.True(t, r.IsValid(10), "upper bound is inclusive")
	assert.True(t, r.IsValid(5))
	assert.False(t, r.IsValid(0))
	assert.False(t, r.IsValid(11))
	assert.Equal(t, "Value must be between 1 and 10", r.Message())
}

func TestRange_Float(t *testing.T) {
	r := Range(0.5, 1.5)

	assert.True(t, r.IsValid(0.5))
	assert.True(t, r.IsValid(1.5))
	assert.False(t, r.IsValid(1.5000001))
	assert.Equal(t, "Value must be between 0.5 and 1.5", r.Message())
}

func TestMinMax(t *testing.T) {
	min := Min(18)
	max := Max(uint8(200))

	assert.True(t, min.IsValid(18))
	assert.False(t, min.IsValid(17))
	assert.Equal(t, "Value must be at least 18", min.Message())

	assert.True(t, max.IsValid(200))
	assert.False(t, max.IsValid(201))
	assert.Equal(t, "Value must be at most 200", max.Message())
}

// ── sign ──

func TestSignRules(t *testing.T) {
	tests := []struct {
		name  string
		rule  Predicate[int]
		value int
		want  bool
	}{
		{name: "positive accepts 1", rule: Positive[int](), value: 1, want: true},
		{name: "positive rejects 0", rule: Positive[int](), value: 0, want: false},
		{name: "non-negative accepts 0", rule: NonNegative[int](), value: 0, want: true},
		{name: "non-negative rejects -1", rule: NonNegative[int](), value: -1, want: false},
		{name: "negative accepts -1", rule: Negative[int](), value: -1, want: true},
		{name: "negative rejects 0", rule: Negative[int](), value: 0, want: false},
		{name: "non-zero accepts -3", rule: NonZero[int](), value: -3, want: true},
		{name: "non-zero rejects 0", rule: NonZero[int](), value: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.IsValid(tt.value))
		})
	}
}

func TestSignRules_Messages(t *testing.T) {
	assert.Equal(t, "Value must be positive", Positive[float64]().Message())
	assert.Equal(t, "Value must not be negative", NonNegative[float64]().Message())
	assert.Equal(t, "Value must be negative", Negative[float64]().Message())
	assert.Equal(t, "Value must not be zero", NonZero[float64]().Message())
}
