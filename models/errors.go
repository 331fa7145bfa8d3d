// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

var (
	// ErrInvalidDate is returned when text cannot be parsed as a [Date].
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidTimeOfDay is returned when text cannot be parsed as a [TimeOfDay].
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
)
