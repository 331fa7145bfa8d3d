// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

// Accepted accepts only true, for questions that must be answered yes.
func Accepted(msg ...string) Predicate[bool] {
	return newPredicate("accepted",
		func(v bool) bool { return v },
		"You must answer yes to continue", msg)
}
