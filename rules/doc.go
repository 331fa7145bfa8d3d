// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package rules provides the validation rules applied to parsed input.
//
// Core concepts:
//   - Rule: a predicate over a typed value plus the message shown when the
//     predicate does not hold.
//   - Predicate: the immutable Rule returned by every constructor in this
//     package. Its message is fixed at construction.
//   - Clock: the source of "now" for time-relative rules (Future, Today,
//     WithinDays, ...).
//
// Every constructor accepts an optional trailing message. The first
// non-empty one replaces the generated default:
//
//	rules.Range(1, 10)                        // "Value must be between 1 and 10"
//	rules.Range(1, 10, "Pick a number 1-10")  // "Pick a number 1-10"
//
// Date and time-of-day rules are generic over [Dated] and [Timed], so one
// rule serves [time.Time] as well as the date-only and time-only types of
// package models.
package rules
