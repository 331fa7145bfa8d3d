// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import (
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9 ()\-]{7,20}$`)
)

// invalidPathChars are rejected in file paths on every platform.
const invalidPathChars = `<>"|?*`

// NotBlank rejects empty and whitespace-only strings.
func NotBlank(msg ...string) Predicate[string] {
	return newPredicate("not_blank",
		func(v string) bool { return strings.TrimSpace(v) != "" },
		"Input cannot be empty", msg)
}

// Length accepts strings whose length in characters is within [min, max].
func Length(min, max int, msg ...string) Predicate[string] {
	return newPredicate("length",
		func(v string) bool {
			n := utf8.RuneCountInString(v)
			return n >= min && n <= max
		},
		fmt.Sprintf("Input must be between %d and %d characters long", min, max), msg)
}

// MinLength accepts strings at least min characters long.
func MinLength(min int, msg ...string) Predicate[string] {
	return newPredicate("min_length",
		func(v string) bool { return utf8.RuneCountInString(v) >= min },
		fmt.Sprintf("Input must be at least %d characters long", min), msg)
}

// MaxLength accepts strings at most max characters long.
func MaxLength(max int, msg ...string) Predicate[string] {
	return newPredicate("max_length",
		func(v string) bool { return utf8.RuneCountInString(v) <= max },
		fmt.Sprintf("Input must be at most %d characters long", max), msg)
}

// Matches accepts strings matching the regular expression pattern.
// An invalid pattern panics here, at construction.
func Matches(pattern string, msg ...string) Predicate[string] {
	re := regexp.MustCompile(pattern)
	return newPredicate("matches",
		re.MatchString,
		fmt.Sprintf("Input must match the pattern %s", pattern), msg)
}

// Alphabetic accepts non-empty strings made of letters only.
func Alphabetic(msg ...string) Predicate[string] {
	return newPredicate("alphabetic",
		func(v string) bool { return allRunes(v, unicode.IsLetter) },
		"Input must contain only letters", msg)
}

// Alphanumeric accepts non-empty strings made of letters and digits only.
func Alphanumeric(msg ...string) Predicate[string] {
	return newPredicate("alphanumeric",
		func(v string) bool {
			return allRunes(v, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) })
		},
		"Input must contain only letters and digits", msg)
}

// NumericOnly accepts non-empty strings made of digits only.
func NumericOnly(msg ...string) Predicate[string] {
	return newPredicate("numeric_only",
		func(v string) bool { return allRunes(v, unicode.IsDigit) },
		"Input must contain only digits", msg)
}

// Uppercase rejects strings containing lowercase letters.
func Uppercase(msg ...string) Predicate[string] {
	return newPredicate("uppercase",
		func(v string) bool { return !strings.ContainsFunc(v, unicode.IsLower) },
		"Input must be in uppercase", msg)
}

// Lowercase rejects strings containing uppercase letters.
func Lowercase(msg ...string) Predicate[string] {
	return newPredicate("lowercase",
		func(v string) bool { return !strings.ContainsFunc(v, unicode.IsUpper) },
		"Input must be in lowercase", msg)
}

// TitleCase accepts strings where every word starts with an uppercase
// letter followed by lowercase letters.
func TitleCase(msg ...string) Predicate[string] {
	return newPredicate("title_case",
		func(v string) bool { return cases.Title(language.Und).String(v) == v },
		"Input must be in title case", msg)
}

// StartsWith accepts strings beginning with prefix.
func StartsWith(prefix string, msg ...string) Predicate[string] {
	return newPredicate("starts_with",
		func(v string) bool { return strings.HasPrefix(v, prefix) },
		fmt.Sprintf("Input must start with '%s'", prefix), msg)
}

// EndsWith accepts strings ending with suffix.
func EndsWith(suffix string, msg ...string) Predicate[string] {
	return newPredicate("ends_with",
		func(v string) bool { return strings.HasSuffix(v, suffix) },
		fmt.Sprintf("Input must end with '%s'", suffix), msg)
}

// Contains accepts strings containing substr.
func Contains(substr string, msg ...string) Predicate[string] {
	return newPredicate("contains",
		func(v string) bool { return strings.Contains(v, substr) },
		fmt.Sprintf("Input must contain '%s'", substr), msg)
}

// NotContains rejects strings containing substr.
func NotContains(substr string, msg ...string) Predicate[string] {
	return newPredicate("not_contains",
		func(v string) bool { return !strings.Contains(v, substr) },
		fmt.Sprintf("Input must not contain '%s'", substr), msg)
}

// OneOfStrings accepts exactly the listed strings.
func OneOfStrings(allowed []string, msg ...string) Predicate[string] {
	set := slices.Clone(allowed)
	return newPredicate("one_of",
		func(v string) bool { return slices.Contains(set, v) },
		fmt.Sprintf("Input must be one of: %s", strings.Join(set, ", ")), msg)
}

// OneOfStringsFold is OneOfStrings with Unicode case folding, so "YES"
// matches an allowed "yes".
func OneOfStringsFold(allowed []string, msg ...string) Predicate[string] {
	fold := cases.Fold()
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[fold.String(a)] = struct{}{}
	}
	return newPredicate("one_of_fold",
		func(v string) bool {
			_, ok := set[cases.Fold().String(v)]
			return ok
		},
		fmt.Sprintf("Input must be one of: %s", strings.Join(allowed, ", ")), msg)
}

// NoneOfStrings rejects the listed strings.
func NoneOfStrings(excluded []string, msg ...string) Predicate[string] {
	set := slices.Clone(excluded)
	return newPredicate("none_of",
		func(v string) bool { return !slices.Contains(set, v) },
		fmt.Sprintf("Input must not be one of: %s", strings.Join(set, ", ")), msg)
}

// Email accepts strings shaped like local@domain.tld.
func Email(msg ...string) Predicate[string] {
	return newPredicate("email",
		emailRegex.MatchString,
		"Please enter a valid email address", msg)
}

// Phone accepts 7 to 20 digits, spaces, dashes and parentheses with an
// optional leading plus sign.
func Phone(msg ...string) Predicate[string] {
	return newPredicate("phone",
		phoneRegex.MatchString,
		"Please enter a valid phone number", msg)
}

// FilePath accepts syntactically valid file paths. When mustExist is set
// the path must also exist on disk.
func FilePath(mustExist bool, msg ...string) Predicate[string] {
	def := "Please enter a valid file path"
	if mustExist {
		def = "Please enter the path of an existing file"
	}
	return newPredicate("file_path",
		func(v string) bool {
			if !validPathSyntax(v) {
				return false
			}
			if !mustExist {
				return true
			}
			_, err := os.Stat(v)
			return err == nil
		},
		def, msg)
}

func validPathSyntax(p string) bool {
	if strings.TrimSpace(p) == "" {
		return false
	}
	if strings.ContainsAny(p, invalidPathChars) {
		return false
	}
	return !strings.ContainsFunc(p, unicode.IsControl)
}

func allRunes(s string, f func(rune) bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !f(r) {
			return false
		}
	}
	return true
}
