// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"maps"
	"slices"

	"github.com/MKhiriev/go-input-guard/rules"
	"github.com/MKhiriev/go-input-guard/validator"
)

// EnumBuilder accumulates rules for an integer-backed enumeration. Input
// is a member name, a numeric value or a comma-separated combination.
type EnumBuilder[T rules.Integer] struct {
	core[T]
	members []T
}

// NewEnum returns a builder for the enumeration whose members maps names
// to values.
func NewEnum[T rules.Integer](prompt string, members map[string]T, in validator.InputProvider, out validator.OutputProvider, opts ...validator.Option) *EnumBuilder[T] {
	return &EnumBuilder[T]{
		core:    newCore[T](prompt, validator.ParseEnum(members), in, out, opts),
		members: slices.Collect(maps.Values(members)),
	}
}

// WithDefined requires one of the declared members.
func (b *EnumBuilder[T]) WithDefined(msg ...string) *EnumBuilder[T] {
	b.add(rules.Defined(b.members, false, msg...))
	return b
}

// WithDefinedFlags requires a combination of declared bit-flag members.
func (b *EnumBuilder[T]) WithDefinedFlags(msg ...string) *EnumBuilder[T] {
	b.add(rules.Defined(b.members, true, msg...))
	return b
}

// WithNotDefault rejects the zero value.
func (b *EnumBuilder[T]) WithNotDefault(msg ...string) *EnumBuilder[T] {
	b.add(rules.NotDefault[T](msg...))
	return b
}

// WithOneOf accepts only the listed values.
func (b *EnumBuilder[T]) WithOneOf(allowed []T, msg ...string) *EnumBuilder[T] {
	b.add(rules.OneOf(allowed, msg...))
	return b
}

// WithNoneOf rejects the listed values.
func (b *EnumBuilder[T]) WithNoneOf(excluded []T, msg ...string) *EnumBuilder[T] {
	b.add(rules.NoneOf(excluded, msg...))
	return b
}

// WithFlag requires every bit of flag to be set.
func (b *EnumBuilder[T]) WithFlag(flag T, msg ...string) *EnumBuilder[T] {
	b.add(rules.FlagSet(flag, msg...))
	return b
}

// WithoutFlag requires every bit of flag to be clear.
func (b *EnumBuilder[T]) WithoutFlag(flag T, msg ...string) *EnumBuilder[T] {
	b.add(rules.FlagNotSet(flag, msg...))
	return b
}

// WithCustom adds a rule from check that reports message when check returns
// false.
func (b *EnumBuilder[T]) WithCustom(check func(T) bool, message string) *EnumBuilder[T] {
	b.add(rules.Custom(check, message))
	return b
}

// WithRule appends a prebuilt rule.
func (b *EnumBuilder[T]) WithRule(rule rules.Rule[T]) *EnumBuilder[T] {
	b.add(rule)
	return b
}
