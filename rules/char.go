// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import (
	"fmt"
	"slices"
	"unicode"
)

// Letter accepts Unicode letters.
func Letter(msg ...string) Predicate[rune] {
	return newPredicate("letter", unicode.IsLetter, "Character must be a letter", msg)
}

// Digit accepts decimal digits.
func Digit(msg ...string) Predicate[rune] {
	return newPredicate("digit", unicode.IsDigit, "Character must be a digit", msg)
}

// Upper accepts uppercase letters.
func Upper(msg ...string) Predicate[rune] {
	return newPredicate("upper", unicode.IsUpper, "Character must be an uppercase letter", msg)
}

// Lower accepts lowercase letters.
func Lower(msg ...string) Predicate[rune] {
	return newPredicate("lower", unicode.IsLower, "Character must be a lowercase letter", msg)
}

// LetterOrDigit accepts letters and digits.
func LetterOrDigit(msg ...string) Predicate[rune] {
	return newPredicate("letter_or_digit",
		func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) },
		"Character must be a letter or a digit", msg)
}

// Whitespace accepts white space characters.
func Whitespace(msg ...string) Predicate[rune] {
	return newPredicate("whitespace", unicode.IsSpace, "Character must be whitespace", msg)
}

// Punctuation accepts punctuation characters.
func Punctuation(msg ...string) Predicate[rune] {
	return newPredicate("punctuation", unicode.IsPunct, "Character must be punctuation", msg)
}

// OneOfRunes accepts only the listed characters.
func OneOfRunes(allowed []rune, msg ...string) Predicate[rune] {
	set := slices.Clone(allowed)
	return newPredicate("one_of_runes",
		func(r rune) bool { return slices.Contains(set, r) },
		fmt.Sprintf("Character must be one of: %s", string(set)), msg)
}

// NoneOfRunes rejects the listed characters.
func NoneOfRunes(excluded []rune, msg ...string) Predicate[rune] {
	set := slices.Clone(excluded)
	return newPredicate("none_of_runes",
		func(r rune) bool { return !slices.Contains(set, r) },
		fmt.Sprintf("Character must not be one of: %s", string(set)), msg)
}

// RuneRange accepts characters in [lo, hi].
func RuneRange(lo, hi rune, msg ...string) Predicate[rune] {
	return newPredicate("rune_range",
		func(r rune) bool { return r >= lo && r <= hi },
		fmt.Sprintf("Character must be between '%c' and '%c'", lo, hi), msg)
}
