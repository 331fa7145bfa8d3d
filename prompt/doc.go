// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package prompt is the one-call surface of go-input-guard.
//
// GetX functions read one value of a type with no extra rules. ForX
// functions return the matching builder from package builder for chaining
// rules:
//
//	age, err := prompt.ForInt("Age").WithRange(18, 120).Get()
//
// Both use a process-wide pair of collectors. By default it is a console
// on stdin and stdout configured from INPUTGUARD_* environment variables,
// a .env file or a config file. Setup builds it explicitly and SetDefault
// replaces it.
//
// Concurrent prompts sharing the default console rely on the terminal to
// serialize access.
package prompt
