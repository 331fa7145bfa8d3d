// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"context"
	"io"
)

// script is an in-memory InputProvider and OutputProvider that replays
// canned lines and records what was displayed.
type script struct {
	inputs  []string
	prompts []string
	errors  []string
}

func newScript(inputs ...string) *script {
	return &script{inputs: inputs}
}

func (s *script) GetInput(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(s.inputs) == 0 {
		return "", io.EOF
	}
	line := s.inputs[0]
	s.inputs = s.inputs[1:]
	return line, nil
}

func (s *script) DisplayPrompt(_ context.Context, message string) error {
	s.prompts = append(s.prompts, message)
	return nil
}

func (s *script) DisplayError(_ context.Context, message string) error {
	s.errors = append(s.errors, message)
	return nil
}
