// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/MKhiriev/go-input-guard/validator"
)

const (
	DefaultSeparator = ": "
	DefaultAckHint   = "Press Enter to continue..."
)

// Console is a line-oriented InputProvider and OutputProvider.
//
// Input is read by a single background goroutine started on the first
// read, so GetInput can return as soon as ctx is done even while the
// underlying reader is blocked. Writes are serialized.
type Console struct {
	in  io.Reader
	out io.Writer

	separator string
	ackHint   string
	ack       validator.InputProvider
	styles    styles

	mu        sync.Mutex
	start     sync.Once
	lines     chan line
	closed    chan struct{}
	closeOnce sync.Once
}

type line struct {
	text string
	err  error
}

// Option configures a Console.
type Option func(*settings)

type settings struct {
	separator string
	ackHint   string
	color     bool
	ack       validator.InputProvider
}

// WithSeparator sets the text written after every prompt.
func WithSeparator(sep string) Option {
	return func(s *settings) { s.separator = sep }
}

// WithAckHint sets the line shown under an error while waiting for the
// user to acknowledge it. An empty hint shows nothing.
func WithAckHint(hint string) Option {
	return func(s *settings) { s.ackHint = hint }
}

// WithColor enables or disables styled error output.
func WithColor(enabled bool) Option {
	return func(s *settings) { s.color = enabled }
}

// WithAckInput reads error acknowledgments from p instead of the console's
// own input.
func WithAckInput(p validator.InputProvider) Option {
	return func(s *settings) { s.ack = p }
}

// New returns a Console reading lines from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	s := settings{
		separator: DefaultSeparator,
		ackHint:   DefaultAckHint,
		color:     true,
	}
	for _, opt := range opts {
		opt(&s)
	}

	c := &Console{
		in:        in,
		out:       out,
		separator: s.separator,
		ackHint:   s.ackHint,
		ack:       s.ack,
		styles:    newStyles(out, s.color),
		lines:     make(chan line),
		closed:    make(chan struct{}),
	}
	if c.ack == nil {
		c.ack = c
	}
	return c
}

// GetInput returns the next input line with surrounding whitespace
// removed. It returns io.EOF once the input is exhausted.
func (c *Console) GetInput(ctx context.Context) (string, error) {
	text, err := c.readLine(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// DisplayPrompt writes message and the separator without a newline.
func (c *Console) DisplayPrompt(ctx context.Context, message string) error {
	if err := c.check(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprint(c.out, message+c.separator)
	return err
}

// DisplayError writes a blank line and the styled message, then blocks
// until the user enters one line.
func (c *Console) DisplayError(ctx context.Context, message string) error {
	if err := c.check(ctx); err != nil {
		return err
	}

	if err := c.writeError(message); err != nil {
		return err
	}

	if _, err := c.ack.GetInput(ctx); err != nil {
		return fmt.Errorf("wait for acknowledgment: %w", err)
	}
	return nil
}

// Close stops the console. Pending and later reads return ErrClosed.
// The underlying reader is not closed.
func (c *Console) Close() error {
	c.closeOnce.Do(func() { close(c.closed) })
	return nil
}

func (c *Console) writeError(message string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(c.styles.err.Render(message))
	b.WriteString("\n")
	if c.ackHint != "" {
		b.WriteString(c.styles.hint.Render(c.ackHint))
	}

	_, err := io.WriteString(c.out, b.String())
	return err
}

func (c *Console) readLine(ctx context.Context) (string, error) {
	if err := c.check(ctx); err != nil {
		return "", err
	}
	c.start.Do(func() { go c.readLoop() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-c.closed:
		return "", ErrClosed
	case l, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

func (c *Console) readLoop() {
	defer close(c.lines)

	sc := bufio.NewScanner(c.in)
	for sc.Scan() {
		select {
		case c.lines <- line{text: sc.Text()}:
		case <-c.closed:
			return
		}
	}

	err := sc.Err()
	if err == nil {
		err = io.EOF
	}
	select {
	case c.lines <- line{err: err}:
	case <-c.closed:
	}
}

func (c *Console) check(ctx context.Context) error {
	select {
	case <-c.closed:
		return ErrClosed
	default:
	}
	return ctx.Err()
}
