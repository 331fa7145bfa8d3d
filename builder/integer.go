// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"context"

	"github.com/MKhiriev/go-input-guard/rules"
	"github.com/MKhiriev/go-input-guard/validator"
)

// IntegerBuilder adds integer-only rules (parity, divisibility, Luhn) to a
// NumberBuilder it wraps. The numeric methods delegate to the wrapped
// builder and return the IntegerBuilder so chains stay typed.
type IntegerBuilder[T rules.Integer] struct {
	num *NumberBuilder[T]
}

// NewInteger returns a builder for an integer type.
func NewInteger[T rules.Integer](prompt string, in validator.InputProvider, out validator.OutputProvider, opts ...validator.Option) *IntegerBuilder[T] {
	return &IntegerBuilder[T]{num: NewNumber[T](prompt, validator.ParseInteger[T], in, out, opts...)}
}

// Number returns the wrapped NumberBuilder. Rules added through it share
// the same validator.
func (b *IntegerBuilder[T]) Number() *NumberBuilder[T] { return b.num }

// Validator returns the underlying validator.
func (b *IntegerBuilder[T]) Validator() *validator.Validator[T] { return b.num.Validator() }

// Get runs the validator until a valid value is entered.
func (b *IntegerBuilder[T]) Get() (T, error) { return b.num.Get() }

// GetContext runs the validator until a valid value is entered or ctx is done.
func (b *IntegerBuilder[T]) GetContext(ctx context.Context) (T, error) {
	return b.num.GetContext(ctx)
}

// GetAsync runs the validator on its own goroutine.
func (b *IntegerBuilder[T]) GetAsync(ctx context.Context) <-chan validator.Result[T] {
	return b.num.GetAsync(ctx)
}

// WithRange requires min <= value <= max ("Value must be between {min} and
// {max}").
func (b *IntegerBuilder[T]) WithRange(min, max T, msg ...string) *IntegerBuilder[T] {
	b.num.WithRange(min, max, msg...)
	return b
}

// WithMin requires value >= min.
func (b *IntegerBuilder[T]) WithMin(min T, msg ...string) *IntegerBuilder[T] {
	b.num.WithMin(min, msg...)
	return b
}

// WithMax requires value <= max.
func (b *IntegerBuilder[T]) WithMax(max T, msg ...string) *IntegerBuilder[T] {
	b.num.WithMax(max, msg...)
	return b
}

// WithPositive requires a value greater than zero.
func (b *IntegerBuilder[T]) WithPositive(msg ...string) *IntegerBuilder[T] {
	b.num.WithPositive(msg...)
	return b
}

// WithNonNegative requires a value of zero or more.
func (b *IntegerBuilder[T]) WithNonNegative(msg ...string) *IntegerBuilder[T] {
	b.num.WithNonNegative(msg...)
	return b
}

// WithNegative requires a value below zero.
func (b *IntegerBuilder[T]) WithNegative(msg ...string) *IntegerBuilder[T] {
	b.num.WithNegative(msg...)
	return b
}

// WithNonZero rejects zero.
func (b *IntegerBuilder[T]) WithNonZero(msg ...string) *IntegerBuilder[T] {
	b.num.WithNonZero(msg...)
	return b
}

// WithOneOf accepts only the listed values.
func (b *IntegerBuilder[T]) WithOneOf(allowed []T, msg ...string) *IntegerBuilder[T] {
	b.num.WithOneOf(allowed, msg...)
	return b
}

// WithNoneOf rejects the listed values.
func (b *IntegerBuilder[T]) WithNoneOf(excluded []T, msg ...string) *IntegerBuilder[T] {
	b.num.WithNoneOf(excluded, msg...)
	return b
}

// WithEven requires an even value.
func (b *IntegerBuilder[T]) WithEven(msg ...string) *IntegerBuilder[T] {
	b.num.add(rules.Even[T](msg...))
	return b
}

// WithOdd requires an odd value.
func (b *IntegerBuilder[T]) WithOdd(msg ...string) *IntegerBuilder[T] {
	b.num.add(rules.Odd[T](msg...))
	return b
}

// WithMultipleOf requires divisibility by divisor, which must not be zero.
func (b *IntegerBuilder[T]) WithMultipleOf(divisor T, msg ...string) *IntegerBuilder[T] {
	b.num.add(rules.MultipleOf(divisor, msg...))
	return b
}

// WithNotMultipleOf rejects multiples of divisor, which must not be zero.
func (b *IntegerBuilder[T]) WithNotMultipleOf(divisor T, msg ...string) *IntegerBuilder[T] {
	b.num.add(rules.NotMultipleOf(divisor, msg...))
	return b
}

// WithLuhn requires a valid Luhn check digit, as on card numbers and IMEIs.
func (b *IntegerBuilder[T]) WithLuhn(msg ...string) *IntegerBuilder[T] {
	b.num.add(rules.Luhn[T](msg...))
	return b
}

// WithCustom adds a rule from check that reports message when check returns
// false.
func (b *IntegerBuilder[T]) WithCustom(check func(T) bool, message string) *IntegerBuilder[T] {
	b.num.WithCustom(check, message)
	return b
}

// WithRule appends a prebuilt rule.
func (b *IntegerBuilder[T]) WithRule(rule rules.Rule[T]) *IntegerBuilder[T] {
	b.num.WithRule(rule)
	return b
}
