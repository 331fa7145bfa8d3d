// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package console implements validator.InputProvider and
// validator.OutputProvider on top of a terminal or any reader/writer pair.
//
// Console reads plain lines. TUIInput reads one line with an editable
// bubbletea text field and can be plugged into a Console as the source of
// error acknowledgments, so a single reader owns the terminal.
package console
