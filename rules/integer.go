// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import (
	"fmt"
	"strconv"
)

// Even accepts values divisible by two.
func Even[T Integer](msg ...string) Predicate[T] {
	return newPredicate("even",
		func(v T) bool { return v%2 == 0 },
		"Value must be even", msg)
}

// Odd accepts values not divisible by two.
func Odd[T Integer](msg ...string) Predicate[T] {
	return newPredicate("odd",
		func(v T) bool { return v%2 != 0 },
		"Value must be odd", msg)
}

// MultipleOf accepts values divisible by divisor.
// divisor must not be zero; the rule panics on evaluation otherwise.
func MultipleOf[T Integer](divisor T, msg ...string) Predicate[T] {
	return newPredicate("multiple_of",
		func(v T) bool { return v%divisor == 0 },
		fmt.Sprintf("Value must be a multiple of %v", divisor), msg)
}

// NotMultipleOf rejects values divisible by divisor.
// divisor must not be zero; the rule panics on evaluation otherwise.
func NotMultipleOf[T Integer](divisor T, msg ...string) Predicate[T] {
	return newPredicate("not_multiple_of",
		func(v T) bool { return v%divisor != 0 },
		fmt.Sprintf("Value must not be a multiple of %v", divisor), msg)
}

// Luhn accepts values whose decimal digits carry a valid Luhn check digit
// (credit card numbers, IMEI). The sign of negative values is ignored.
func Luhn[T Integer](msg ...string) Predicate[T] {
	return newPredicate("luhn",
		func(v T) bool { return luhnValid(decimalDigits(v)) },
		"Value must pass the Luhn checksum", msg)
}

// LuhnDigits is the string form of [Luhn]: the value must consist of
// decimal digits only and end with a valid check digit.
func LuhnDigits(msg ...string) Predicate[string] {
	return newPredicate("luhn",
		func(v string) bool { return isDigits(v) && luhnValid(v) },
		"Value must pass the Luhn checksum", msg)
}

func decimalDigits[T Integer](v T) string {
	if v < 0 {
		return strconv.FormatInt(int64(v), 10)[1:]
	}
	return strconv.FormatUint(uint64(v), 10)
}

// luhnValid walks every digit but the last from the left, doubling the
// digits that sit at an odd distance from the check digit, and compares
// the resulting check digit with the last one.
func luhnValid(digits string) bool {
	n := len(digits)
	if n == 0 {
		return false
	}

	sum := 0
	for i := 0; i < n-1; i++ {
		d := int(digits[i] - '0')
		if (n-1-i)%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}

	check := (10 - sum%10) % 10
	return check == int(digits[n-1]-'0')
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
