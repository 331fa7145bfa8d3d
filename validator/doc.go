// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validator implements the prompt, parse and validate loop that
// turns raw user input into a typed value.
//
// Core concepts:
//   - InputProvider / OutputProvider: the two collaborators the loop talks
//     to (see package console for the terminal implementation).
//   - ParseFunc: converts a raw line into the target type. The error text is
//     shown to the user as is.
//   - Validator: owns the prompt, the parser and an ordered list of rules.
//
// Each attempt displays the prompt, reads one line, parses it and checks the
// rules in insertion order. The first failure is displayed and the loop
// starts over; there is no retry limit. The loop ends when a value passes
// every rule, when ctx is canceled or when a provider returns an error.
//
// GetValidInput, GetValidInputContext and GetValidInputAsync all run the
// same loop.
package validator
