// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"github.com/MKhiriev/go-input-guard/rules"
	"github.com/MKhiriev/go-input-guard/validator"
)

// BoolBuilder asks a yes/no question.
type BoolBuilder struct {
	core[bool]
}

func NewBool(prompt string, in validator.InputProvider, out validator.OutputProvider, opts ...validator.Option) *BoolBuilder {
	return &BoolBuilder{core: newCore[bool](prompt, validator.ParseBool, in, out, opts)}
}

// WithRequireYes only accepts a positive answer, e.g. for license
// acceptance.
func (b *BoolBuilder) WithRequireYes(msg ...string) *BoolBuilder {
	b.add(rules.Accepted(msg...))
	return b
}

// WithCustom adds a rule from check that reports message when check returns
// false.
func (b *BoolBuilder) WithCustom(check func(bool) bool, message string) *BoolBuilder {
	b.add(rules.Custom(check, message))
	return b
}

// WithRule appends a prebuilt rule.
func (b *BoolBuilder) WithRule(rule rules.Rule[bool]) *BoolBuilder {
	b.add(rule)
	return b
}
