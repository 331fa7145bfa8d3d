// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validator

import "context"

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/providers_mock.go -package=mock

// InputProvider supplies raw user input, one line per call.
type InputProvider interface {
	// GetInput blocks until a line is available and returns it trimmed of
	// surrounding whitespace. An empty string means no input was given.
	// Implementations must return promptly with an error once ctx is done.
	GetInput(ctx context.Context) (string, error)
}

// OutputProvider shows prompts and failure messages to the user.
type OutputProvider interface {
	// DisplayPrompt writes message followed by a separator, without a
	// trailing newline.
	DisplayPrompt(ctx context.Context, message string) error

	// DisplayError writes message after a blank line and blocks until the
	// user acknowledges it with one line of input.
	DisplayError(ctx context.Context, message string) error
}
