// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import "fmt"

// Range accepts values in the inclusive interval [min, max].
func Range[T Numeric](min, max T, msg ...string) Predicate[T] {
	return newPredicate("range",
		func(v T) bool { return v >= min && v <= max },
		fmt.Sprintf("Value must be between %v and %v", min, max), msg)
}

// Min accepts values greater than or equal to min.
func Min[T Numeric](min T, msg ...string) Predicate[T] {
	return newPredicate("min",
		func(v T) bool { return v >= min },
		fmt.Sprintf("Value must be at least %v", min), msg)
}

// Max accepts values less than or equal to max.
func Max[T Numeric](max T, msg ...string) Predicate[T] {
	return newPredicate("max",
		func(v T) bool { return v <= max },
		fmt.Sprintf("Value must be at most %v", max), msg)
}

// Positive accepts values strictly greater than zero.
func Positive[T Numeric](msg ...string) Predicate[T] {
	return newPredicate("positive",
		func(v T) bool { return v > 0 },
		"Value must be positive", msg)
}

// NonNegative accepts zero and positive values.
func NonNegative[T Numeric](msg ...string) Predicate[T] {
	return newPredicate("non_negative",
		func(v T) bool { return v >= 0 },
		"Value must not be negative", msg)
}

// Negative accepts values strictly less than zero.
func Negative[T Numeric](msg ...string) Predicate[T] {
	return newPredicate("negative",
		func(v T) bool { return v < 0 },
		"Value must be negative", msg)
}

// NonZero rejects zero.
func NonZero[T Numeric](msg ...string) Predicate[T] {
	return newPredicate("non_zero",
		func(v T) bool { return v != 0 },
		"Value must not be zero", msg)
}
