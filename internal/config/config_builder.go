// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	// file is where the config file lands in configs: above defaults,
	// below env and flags.
	file int
	err  error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected configs in order, later non-zero fields
// overriding earlier ones, and validates the result. Pointer fields are
// replaced whole, so a set *bool false still wins.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride, mergo.WithoutDereference); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, Default())
	b.file = len(b.configs)
	return b
}

// withDotEnv loads variables from the given files (".env" when none) into
// the process environment. Missing files are skipped and variables that are
// already set win.
func (b *configBuilder) withDotEnv(paths ...string) *configBuilder {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, p := range paths {
		if err := loadDotEnv(p); err != nil {
			b.err = errors.Join(b.err, err)
		}
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	if args == nil {
		return b
	}

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagCfg, err := ParseFlags(fs, args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagCfg)
	return b
}

// withFile reads the config file named by the last source that set a path.
func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, cfg := range b.configs {
		if cfg.FilePath != "" {
			path = cfg.FilePath
		}
	}
	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = slices.Insert(b.configs, min(b.file, len(b.configs)), fileCfg)
	return b
}
