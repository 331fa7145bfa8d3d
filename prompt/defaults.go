// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-input-guard/console"
	"github.com/MKhiriev/go-input-guard/internal/config"
	"github.com/MKhiriev/go-input-guard/internal/logger"
	"github.com/MKhiriev/go-input-guard/validator"
)

type collectors struct {
	in    validator.InputProvider
	out   validator.OutputProvider
	opts  []validator.Option
	// close is nil for collectors the caller owns.
	close func() error
}

var (
	mu       sync.RWMutex
	defaults *collectors
	initOnce sync.Once
)

// SetDefault makes every later GetX and ForX call use in and out. opts are
// passed to each validator. Collectors built by Setup or on first use are
// closed when replaced.
func SetDefault(in validator.InputProvider, out validator.OutputProvider, opts ...validator.Option) {
	install(&collectors{in: in, out: out, opts: slices.Clone(opts)})
}

func install(c *collectors) {
	initOnce.Do(func() {})

	mu.Lock()
	prev := defaults
	defaults = c
	mu.Unlock()

	if prev != nil && prev.close != nil {
		_ = prev.close()
	}
}

// Close releases the log file and console behind the default collectors
// when this package built them. It is safe to call more than once.
func Close() error {
	mu.RLock()
	c := defaults
	mu.RUnlock()

	if c == nil || c.close == nil {
		return nil
	}
	return c.close()
}

// Setup loads the configuration, parsing args as command-line flags, and
// installs a console on stdin and stdout as the default collectors.
// The returned function is equivalent to [Close].
func Setup(args []string) (func() error, error) {
	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	c, err := newCollectors(cfg, os.Stdin, os.Stdout)
	if err != nil {
		return nil, err
	}

	install(c)
	return c.close, nil
}

// newCollectors builds the collectors and logger cfg describes.
func newCollectors(cfg *config.StructuredConfig, in io.Reader, out io.Writer) (*collectors, error) {
	log, closeLog, err := logger.NewFileLogger("prompt", cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	opts := cfg.Console.Options()
	var input validator.InputProvider
	if cfg.Console.TUI() {
		tui := console.NewTUIInput(in, out)
		opts = append(opts, console.WithAckInput(tui))
		input = tui
	}

	con := console.New(in, out, opts...)
	if input == nil {
		input = con
	}

	return &collectors{
		in:    input,
		out:   con,
		opts:  []validator.Option{validator.WithLogger(log.Logger)},
		close: sync.OnceValue(func() error {
			return errors.Join(con.Close(), closeLog())
		}),
	}, nil
}

// current returns the default collectors, building them from the
// environment on first use.
func current() *collectors {
	initOnce.Do(func() {
		c := loadFromEnv(os.Stdin, os.Stdout, os.Stderr)
		mu.Lock()
		defaults = c
		mu.Unlock()
	})

	mu.RLock()
	defer mu.RUnlock()
	return defaults
}

// loadFromEnv never returns nil. Problems are reported on warn and the
// collectors fall back to a plain console without logging.
func loadFromEnv(in io.Reader, out, warn io.Writer) *collectors {
	log := logger.NewLogger("prompt", warn, zerolog.WarnLevel)

	cfg, err := config.GetStructuredConfig(nil)
	if err != nil {
		log.Warn().Err(err).Msg("using default configuration")
		cfg = config.Default()
	}

	c, err := newCollectors(cfg, in, out)
	if err == nil {
		return c
	}

	log.Warn().Err(err).Msg("using plain console")
	con := console.New(in, out, cfg.Console.Options()...)
	return &collectors{in: con, out: con, close: sync.OnceValue(con.Close)}
}
