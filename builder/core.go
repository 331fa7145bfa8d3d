// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"context"

	"github.com/MKhiriev/go-input-guard/rules"
	"github.com/MKhiriev/go-input-guard/validator"
)

// core carries the validator and the terminal operations shared by every
// builder.
type core[T any] struct {
	v *validator.Validator[T]
}

func newCore[T any](prompt string, parse validator.ParseFunc[T], in validator.InputProvider, out validator.OutputProvider, opts []validator.Option) core[T] {
	return core[T]{v: validator.New(prompt, parse, in, out, opts...)}
}

// Validator returns the underlying validator.
func (c core[T]) Validator() *validator.Validator[T] {
	return c.v
}

// Get runs the validator until a valid value is entered.
func (c core[T]) Get() (T, error) {
	return c.v.GetValidInput()
}

// GetContext runs the validator until a valid value is entered or ctx is
// done.
func (c core[T]) GetContext(ctx context.Context) (T, error) {
	return c.v.GetValidInputContext(ctx)
}

// GetAsync runs the validator on its own goroutine.
func (c core[T]) GetAsync(ctx context.Context) <-chan validator.Result[T] {
	return c.v.GetValidInputAsync(ctx)
}

func (c core[T]) add(r rules.Rule[T]) {
	c.v.AddRule(r)
}

func (c core[T]) clock() rules.Clock {
	return c.v.Clock()
}
