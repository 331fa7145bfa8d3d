// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validator

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-input-guard/internal/logger"
	"github.com/MKhiriev/go-input-guard/rules"
)

// ParseFunc converts a raw input line into T. The error text is displayed
// to the user, so it should read as an instruction ("Please enter a valid
// integer").
type ParseFunc[T any] func(raw string) (T, error)

// Result is the outcome delivered by GetValidInputAsync.
type Result[T any] struct {
	Value T
	Err   error
}

// Validator repeatedly prompts for a T until the input parses and passes
// every rule.
//
// A Validator is built for one prompt and is not safe for concurrent use
// while rules are being added.
type Validator[T any] struct {
	prompt string
	parse  ParseFunc[T]
	rules  []rules.Rule[T]

	in  InputProvider
	out OutputProvider

	// log is nil unless WithLogger was given.
	log   *logger.Logger
	clock rules.Clock
}

// New returns a Validator for prompt that parses input with parse and talks
// to the user through in and out.
func New[T any](prompt string, parse ParseFunc[T], in InputProvider, out OutputProvider, opts ...Option) *Validator[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Validator[T]{
		prompt: prompt,
		parse:  parse,
		in:     in,
		out:    out,
		log:    o.log,
		clock:  o.clock,
	}
}

// AddRule appends rule to the rule list and returns v for chaining.
// Rules are checked in the order they were added.
func (v *Validator[T]) AddRule(rule rules.Rule[T]) *Validator[T] {
	v.rules = append(v.rules, rule)
	return v
}

// Rules returns a copy of the rule list in evaluation order.
func (v *Validator[T]) Rules() []rules.Rule[T] {
	return slices.Clone(v.rules)
}

// Prompt returns the text shown before each attempt.
func (v *Validator[T]) Prompt() string {
	return v.prompt
}

// Clock returns the clock time-relative rules should use.
func (v *Validator[T]) Clock() rules.Clock {
	return v.clock
}

// GetValidInput blocks until a valid value is entered or a provider fails.
func (v *Validator[T]) GetValidInput() (T, error) {
	return v.GetValidInputContext(context.Background())
}

// GetValidInputAsync runs the loop on its own goroutine. The returned
// channel delivers exactly one Result and is then closed.
func (v *Validator[T]) GetValidInputAsync(ctx context.Context) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		defer close(ch)
		value, err := v.GetValidInputContext(ctx)
		ch <- Result[T]{Value: value, Err: err}
	}()
	return ch
}

// GetValidInputContext runs the prompt, parse and validate loop until a
// value passes every rule.
//
// ctx is checked before every prompt; once it is done the loop stops with
// an error matching both ErrCanceled and ctx.Err(). Errors from the
// providers stop the loop as well. Parse and rule failures are displayed
// and retried without limit.
func (v *Validator[T]) GetValidInputContext(ctx context.Context) (T, error) {
	var zero T
	if v.in == nil {
		return zero, ErrNoInputProvider
	}
	if v.out == nil {
		return zero, ErrNoOutputProvider
	}

	log := v.attemptLogger(ctx)

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			log.Debug().Int("attempt", attempt).Err(err).Msg("input canceled")
			return zero, fmt.Errorf("%w: %w", ErrCanceled, err)
		}

		if err := v.out.DisplayPrompt(ctx, v.prompt); err != nil {
			return zero, v.providerError(ctx, "display prompt", err)
		}

		raw, err := v.in.GetInput(ctx)
		if err != nil {
			return zero, v.providerError(ctx, "read input", err)
		}

		value, err := v.parse(raw)
		if err != nil {
			log.Debug().Int("attempt", attempt).Err(err).Msg("parse failed")
			if err := v.out.DisplayError(ctx, err.Error()); err != nil {
				return zero, v.providerError(ctx, "display error", err)
			}
			continue
		}

		if failed, ok := v.firstFailing(value); ok {
			log.Debug().Int("attempt", attempt).Str("rule", ruleName(failed)).Msg("rule failed")
			if err := v.out.DisplayError(ctx, failed.Message()); err != nil {
				return zero, v.providerError(ctx, "display error", err)
			}
			continue
		}

		log.Debug().Int("attempt", attempt).Msg("input accepted")
		return value, nil
	}
}

// attemptLogger returns a child of the configured logger, or of the one in
// ctx, tagged with the prompt.
func (v *Validator[T]) attemptLogger(ctx context.Context) *logger.Logger {
	base := v.log
	if base == nil {
		base = logger.FromContext(ctx)
	}

	child := base.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("prompt", v.prompt)
	})
	return child
}

func (v *Validator[T]) firstFailing(value T) (rules.Rule[T], bool) {
	for _, r := range v.rules {
		if !r.IsValid(value) {
			return r, true
		}
	}
	return nil, false
}

// providerError wraps err, marking it as a cancellation when ctx is done.
func (v *Validator[T]) providerError(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		if !errors.Is(err, ctxErr) {
			err = errors.Join(ctxErr, err)
		}
		return fmt.Errorf("%w: %s: %w", ErrCanceled, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func ruleName(r any) string {
	if n, ok := r.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", r)
}
