// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"github.com/MKhiriev/go-input-guard/rules"
	"github.com/MKhiriev/go-input-guard/validator"
)

// RuneBuilder accumulates rules for single-character input.
type RuneBuilder struct {
	core[rune]
}

func NewRune(prompt string, in validator.InputProvider, out validator.OutputProvider, opts ...validator.Option) *RuneBuilder {
	return &RuneBuilder{core: newCore[rune](prompt, validator.ParseRune, in, out, opts)}
}

// WithLetter requires a Unicode letter.
func (b *RuneBuilder) WithLetter(msg ...string) *RuneBuilder {
	b.add(rules.Letter(msg...))
	return b
}

// WithDigit requires a decimal digit.
func (b *RuneBuilder) WithDigit(msg ...string) *RuneBuilder {
	b.add(rules.Digit(msg...))
	return b
}

// WithUpper requires an uppercase letter.
func (b *RuneBuilder) WithUpper(msg ...string) *RuneBuilder {
	b.add(rules.Upper(msg...))
	return b
}

// WithLower requires a lowercase letter.
func (b *RuneBuilder) WithLower(msg ...string) *RuneBuilder {
	b.add(rules.Lower(msg...))
	return b
}

// WithLetterOrDigit requires a letter or a digit.
func (b *RuneBuilder) WithLetterOrDigit(msg ...string) *RuneBuilder {
	b.add(rules.LetterOrDigit(msg...))
	return b
}

// WithWhitespace requires a whitespace character.
func (b *RuneBuilder) WithWhitespace(msg ...string) *RuneBuilder {
	b.add(rules.Whitespace(msg...))
	return b
}

// WithPunctuation requires a punctuation character.
func (b *RuneBuilder) WithPunctuation(msg ...string) *RuneBuilder {
	b.add(rules.Punctuation(msg...))
	return b
}

// WithOneOf accepts only the characters of allowed.
func (b *RuneBuilder) WithOneOf(allowed string, msg ...string) *RuneBuilder {
	b.add(rules.OneOfRunes([]rune(allowed), msg...))
	return b
}

// WithNoneOf rejects the characters of excluded.
func (b *RuneBuilder) WithNoneOf(excluded string, msg ...string) *RuneBuilder {
	b.add(rules.NoneOfRunes([]rune(excluded), msg...))
	return b
}

// WithRange requires lo <= r <= hi.
func (b *RuneBuilder) WithRange(lo, hi rune, msg ...string) *RuneBuilder {
	b.add(rules.RuneRange(lo, hi, msg...))
	return b
}

// WithCustom adds a rule from check that reports message when check returns
// false.
func (b *RuneBuilder) WithCustom(check func(rune) bool, message string) *RuneBuilder {
	b.add(rules.Custom(check, message))
	return b
}

// WithRule appends a prebuilt rule.
func (b *RuneBuilder) WithRule(rule rules.Rule[rune]) *RuneBuilder {
	b.add(rule)
	return b
}
