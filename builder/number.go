// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"github.com/MKhiriev/go-input-guard/rules"
	"github.com/MKhiriev/go-input-guard/validator"
)

// NumberBuilder accumulates rules shared by every numeric type.
type NumberBuilder[T rules.Numeric] struct {
	core[T]
}

// NewNumber returns a builder for T that parses input with parse.
func NewNumber[T rules.Numeric](prompt string, parse validator.ParseFunc[T], in validator.InputProvider, out validator.OutputProvider, opts ...validator.Option) *NumberBuilder[T] {
	return &NumberBuilder[T]{core: newCore[T](prompt, parse, in, out, opts)}
}

// NewFloat returns a NumberBuilder for a floating-point type.
func NewFloat[T rules.Float](prompt string, in validator.InputProvider, out validator.OutputProvider, opts ...validator.Option) *NumberBuilder[T] {
	return NewNumber[T](prompt, validator.ParseFloat[T], in, out, opts...)
}

// WithRange requires min <= value <= max ("Value must be between {min} and
// {max}").
func (b *NumberBuilder[T]) WithRange(min, max T, msg ...string) *NumberBuilder[T] {
	b.add(rules.Range(min, max, msg...))
	return b
}

// WithMin requires value >= min.
func (b *NumberBuilder[T]) WithMin(min T, msg ...string) *NumberBuilder[T] {
	b.add(rules.Min(min, msg...))
	return b
}

// WithMax requires value <= max.
func (b *NumberBuilder[T]) WithMax(max T, msg ...string) *NumberBuilder[T] {
	b.add(rules.Max(max, msg...))
	return b
}

// WithPositive requires a value greater than zero.
func (b *NumberBuilder[T]) WithPositive(msg ...string) *NumberBuilder[T] {
	b.add(rules.Positive[T](msg...))
	return b
}

// WithNonNegative requires a value of zero or more.
func (b *NumberBuilder[T]) WithNonNegative(msg ...string) *NumberBuilder[T] {
	b.add(rules.NonNegative[T](msg...))
	return b
}

// WithNegative requires a value below zero.
func (b *NumberBuilder[T]) WithNegative(msg ...string) *NumberBuilder[T] {
	b.add(rules.Negative[T](msg...))
	return b
}

// WithNonZero rejects zero.
func (b *NumberBuilder[T]) WithNonZero(msg ...string) *NumberBuilder[T] {
	b.add(rules.NonZero[T](msg...))
	return b
}

// WithOneOf accepts only the listed values.
func (b *NumberBuilder[T]) WithOneOf(allowed []T, msg ...string) *NumberBuilder[T] {
	b.add(rules.OneOf(allowed, msg...))
	return b
}

// WithNoneOf rejects the listed values.
func (b *NumberBuilder[T]) WithNoneOf(excluded []T, msg ...string) *NumberBuilder[T] {
	b.add(rules.NoneOf(excluded, msg...))
	return b
}

// WithCustom appends a caller-defined rule.
func (b *NumberBuilder[T]) WithCustom(check func(T) bool, message string) *NumberBuilder[T] {
	b.add(rules.Custom(check, message))
	return b
}

// WithRule appends any Rule implementation.
func (b *NumberBuilder[T]) WithRule(rule rules.Rule[T]) *NumberBuilder[T] {
	b.add(rule)
	return b
}
