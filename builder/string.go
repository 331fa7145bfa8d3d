// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"github.com/MKhiriev/go-input-guard/rules"
	"github.com/MKhiriev/go-input-guard/validator"
)

// StringBuilder accumulates rules for free-text input. Blank input is
// rejected by the parser before any rule runs.
type StringBuilder struct {
	core[string]
}

func NewString(prompt string, in validator.InputProvider, out validator.OutputProvider, opts ...validator.Option) *StringBuilder {
	return &StringBuilder{core: newCore[string](prompt, validator.ParseString, in, out, opts)}
}

// WithLength bounds the length in characters, inclusive.
func (b *StringBuilder) WithLength(min, max int, msg ...string) *StringBuilder {
	b.add(rules.Length(min, max, msg...))
	return b
}

// WithMinLength requires at least min characters.
func (b *StringBuilder) WithMinLength(min int, msg ...string) *StringBuilder {
	b.add(rules.MinLength(min, msg...))
	return b
}

// WithMaxLength allows at most max characters.
func (b *StringBuilder) WithMaxLength(max int, msg ...string) *StringBuilder {
	b.add(rules.MaxLength(max, msg...))
	return b
}

// WithPattern requires a match of the regular expression pattern. A
// malformed pattern panics here.
func (b *StringBuilder) WithPattern(pattern string, msg ...string) *StringBuilder {
	b.add(rules.Matches(pattern, msg...))
	return b
}

// WithAlphabetic allows letters only.
func (b *StringBuilder) WithAlphabetic(msg ...string) *StringBuilder {
	b.add(rules.Alphabetic(msg...))
	return b
}

// WithAlphanumeric allows letters and digits only.
func (b *StringBuilder) WithAlphanumeric(msg ...string) *StringBuilder {
	b.add(rules.Alphanumeric(msg...))
	return b
}

// WithNumericOnly allows decimal digits only.
func (b *StringBuilder) WithNumericOnly(msg ...string) *StringBuilder {
	b.add(rules.NumericOnly(msg...))
	return b
}

// WithUppercase rejects lowercase letters.
func (b *StringBuilder) WithUppercase(msg ...string) *StringBuilder {
	b.add(rules.Uppercase(msg...))
	return b
}

// WithLowercase rejects uppercase letters.
func (b *StringBuilder) WithLowercase(msg ...string) *StringBuilder {
	b.add(rules.Lowercase(msg...))
	return b
}

// WithTitleCase requires every word to start with a capital letter.
func (b *StringBuilder) WithTitleCase(msg ...string) *StringBuilder {
	b.add(rules.TitleCase(msg...))
	return b
}

// WithPrefix requires the input to start with prefix.
func (b *StringBuilder) WithPrefix(prefix string, msg ...string) *StringBuilder {
	b.add(rules.StartsWith(prefix, msg...))
	return b
}

// WithSuffix requires the input to end with suffix.
func (b *StringBuilder) WithSuffix(suffix string, msg ...string) *StringBuilder {
	b.add(rules.EndsWith(suffix, msg...))
	return b
}

// WithContains requires substr somewhere in the input.
func (b *StringBuilder) WithContains(substr string, msg ...string) *StringBuilder {
	b.add(rules.Contains(substr, msg...))
	return b
}

// WithNotContains rejects input containing substr.
func (b *StringBuilder) WithNotContains(substr string, msg ...string) *StringBuilder {
	b.add(rules.NotContains(substr, msg...))
	return b
}

// WithOneOf accepts only the listed values.
func (b *StringBuilder) WithOneOf(allowed []string, msg ...string) *StringBuilder {
	b.add(rules.OneOfStrings(allowed, msg...))
	return b
}

// WithOneOfFold is WithOneOf ignoring case.
func (b *StringBuilder) WithOneOfFold(allowed []string, msg ...string) *StringBuilder {
	b.add(rules.OneOfStringsFold(allowed, msg...))
	return b
}

// WithNoneOf rejects the listed values.
func (b *StringBuilder) WithNoneOf(excluded []string, msg ...string) *StringBuilder {
	b.add(rules.NoneOfStrings(excluded, msg...))
	return b
}

// WithEmail requires a local@domain.tld shape.
func (b *StringBuilder) WithEmail(msg ...string) *StringBuilder {
	b.add(rules.Email(msg...))
	return b
}

// WithPhone requires 7 to 20 digits, spaces, dashes and parentheses with an
// optional leading +.
func (b *StringBuilder) WithPhone(msg ...string) *StringBuilder {
	b.add(rules.Phone(msg...))
	return b
}

// WithFilePath requires a syntactically valid path that, when mustExist is
// set, also exists on disk.
func (b *StringBuilder) WithFilePath(mustExist bool, msg ...string) *StringBuilder {
	b.add(rules.FilePath(mustExist, msg...))
	return b
}

// WithLuhn requires a digit string with a valid Luhn check digit, e.g. a
// card number entered as text to keep leading zeros.
func (b *StringBuilder) WithLuhn(msg ...string) *StringBuilder {
	b.add(rules.LuhnDigits(msg...))
	return b
}

// WithCustom adds a rule from check that reports message when check returns
// false.
func (b *StringBuilder) WithCustom(check func(string) bool, message string) *StringBuilder {
	b.add(rules.Custom(check, message))
	return b
}

// WithRule appends a prebuilt rule.
func (b *StringBuilder) WithRule(rule rules.Rule[string]) *StringBuilder {
	b.add(rule)
	return b
}
