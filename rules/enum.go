// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import (
	"fmt"
	"slices"
	"strings"
)

// Defined accepts values that are one of the declared members of an
// enumeration. Flag combinations are accepted when every set bit belongs
// to a declared member and flags is true.
func Defined[T Integer](members []T, flags bool, msg ...string) Predicate[T] {
	set := slices.Clone(members)
	var mask T
	for _, m := range set {
		mask |= m
	}
	return newPredicate("defined",
		func(v T) bool {
			if slices.Contains(set, v) {
				return true
			}
			return flags && v&^mask == 0
		},
		"Value must be a defined option", msg)
}

// NotDefault rejects the zero value.
func NotDefault[T comparable](msg ...string) Predicate[T] {
	return newPredicate("not_default",
		func(v T) bool {
			var zero T
			return v != zero
		},
		"Value must not be the default option", msg)
}

// OneOf accepts only the listed values.
func OneOf[T comparable](allowed []T, msg ...string) Predicate[T] {
	set := slices.Clone(allowed)
	return newPredicate("one_of",
		func(v T) bool { return slices.Contains(set, v) },
		fmt.Sprintf("Value must be one of: %s", joinValues(set)), msg)
}

// NoneOf rejects the listed values.
func NoneOf[T comparable](excluded []T, msg ...string) Predicate[T] {
	set := slices.Clone(excluded)
	return newPredicate("none_of",
		func(v T) bool { return !slices.Contains(set, v) },
		fmt.Sprintf("Value must not be one of: %s", joinValues(set)), msg)
}

// FlagSet accepts values with every bit of flag set.
func FlagSet[T Integer](flag T, msg ...string) Predicate[T] {
	return newPredicate("flag_set",
		func(v T) bool { return v&flag == flag },
		fmt.Sprintf("Flag %v must be set", flag), msg)
}

// FlagNotSet accepts values with no bit of flag set.
func FlagNotSet[T Integer](flag T, msg ...string) Predicate[T] {
	return newPredicate("flag_not_set",
		func(v T) bool { return v&flag == 0 },
		fmt.Sprintf("Flag %v must not be set", flag), msg)
}

func joinValues[T any](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
