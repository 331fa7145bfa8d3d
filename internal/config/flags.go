// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
)

// ParseFlags registers the configuration flags on fs and parses args.
//
// Flags:
//
//	-c/-config   JSON or YAML config file path
//	-separator   text written after every prompt
//	-ack-hint    hint shown under error messages
//	-no-color    disable styled error output
//	-mode        input mode: line or tui
//	-log-level   zerolog level (e.g. debug, info, disabled)
//	-log-file    append logs to this file instead of stderr
func ParseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	fs.StringVar(&cfg.FilePath, "c", "", "Config file path")
	fs.StringVar(&cfg.FilePath, "config", "", "Config file path (alias)")
	fs.StringVar(&cfg.Console.Separator, "separator", "", "Text written after every prompt")
	fs.StringVar(&cfg.Console.AckHint, "ack-hint", "", "Hint shown under error messages")
	noColor := fs.Bool("no-color", false, "Disable styled error output")
	fs.StringVar(&cfg.Console.InputMode, "mode", "", "Input mode: line or tui")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (e.g. debug, info, disabled)")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	// Only a flag that was given may override lower sources.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "no-color" {
			cfg.Console.NoColor = noColor
		}
	})

	return cfg, nil
}
