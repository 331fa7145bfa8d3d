// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package console

import "errors"

var (
	// ErrUserQuit is returned by TUIInput when the user presses esc or ctrl+c.
	ErrUserQuit = errors.New("user quit")

	// ErrClosed is returned by a Console after Close.
	ErrClosed = errors.New("console closed")
)
