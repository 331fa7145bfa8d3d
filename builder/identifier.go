// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"github.com/google/uuid"

	"github.com/MKhiriev/go-input-guard/rules"
	"github.com/MKhiriev/go-input-guard/validator"
)

// UUIDBuilder accumulates rules for GUID input.
type UUIDBuilder struct {
	core[uuid.UUID]
}

func NewUUID(prompt string, in validator.InputProvider, out validator.OutputProvider, opts ...validator.Option) *UUIDBuilder {
	return &UUIDBuilder{core: newCore[uuid.UUID](prompt, validator.ParseUUID, in, out, opts)}
}

// WithNonNil rejects the all-zero GUID ("GUID cannot be empty").
func (b *UUIDBuilder) WithNonNil(msg ...string) *UUIDBuilder {
	b.add(rules.NonNilUUID(msg...))
	return b
}

// WithVersion requires the given GUID version ("GUID must be version {n}").
func (b *UUIDBuilder) WithVersion(version int, msg ...string) *UUIDBuilder {
	b.add(rules.UUIDVersion(version, msg...))
	return b
}

// WithOneOf accepts only the listed GUIDs.
func (b *UUIDBuilder) WithOneOf(allowed []uuid.UUID, msg ...string) *UUIDBuilder {
	b.add(rules.OneOfUUIDs(allowed, msg...))
	return b
}

// WithNoneOf rejects the listed GUIDs ("GUID is not allowed").
func (b *UUIDBuilder) WithNoneOf(excluded []uuid.UUID, msg ...string) *UUIDBuilder {
	b.add(rules.NoneOfUUIDs(excluded, msg...))
	return b
}

// WithCustom adds a rule from check that reports message when check returns
// false.
func (b *UUIDBuilder) WithCustom(check func(uuid.UUID) bool, message string) *UUIDBuilder {
	b.add(rules.Custom(check, message))
	return b
}

// WithRule appends a prebuilt rule.
func (b *UUIDBuilder) WithRule(rule rules.Rule[uuid.UUID]) *UUIDBuilder {
	b.add(rule)
	return b
}
