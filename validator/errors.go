// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validator

import "errors"

var (
	// ErrCanceled is returned when the context is done before a valid value
	// was obtained. The context's own error is wrapped alongside it.
	ErrCanceled = errors.New("input canceled")

	ErrNoInputProvider  = errors.New("validator has no input provider")
	ErrNoOutputProvider = errors.New("validator has no output provider")
)

// ParseError is the error returned by the parsers of this package.
// Message is the text displayed to the user.
type ParseError struct {
	Message string
	Err     error
}

func (e *ParseError) Error() string { return e.Message }

func (e *ParseError) Unwrap() error { return e.Err }

func parseError(message string, err error) error {
	return &ParseError{Message: message, Err: err}
}
