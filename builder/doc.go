// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package builder provides fluent, type-specific front ends for
// validator.Validator.
//
// Every builder owns one validator. Each WithX method appends exactly one
// rule, in call order, and returns the same builder so calls chain:
//
//	age, err := builder.NewInteger[int]("Age", in, out).
//		WithRange(18, 120).
//		WithEven().
//		Get()
//
// Builder methods never fail; errors surface from Get, GetContext and
// GetAsync, which run the validator loop.
package builder
