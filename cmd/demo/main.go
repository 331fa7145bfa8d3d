// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-input-guard/console"
	"github.com/MKhiriev/go-input-guard/internal/logger"
	"github.com/MKhiriev/go-input-guard/prompt"
	"github.com/MKhiriev/go-input-guard/validator"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-input-guard-demo", os.Stderr, zerolog.InfoLevel)

	closeFn, err := prompt.Setup(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error setting up prompts")
	}
	defer func() {
		if err := closeFn(); err != nil {
			log.Error().Err(err).Msg("error closing prompts")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	answers, err := runSurvey(ctx)
	switch {
	case console.IsUserQuit(err), errors.Is(err, validator.ErrCanceled):
		fmt.Println("\nSurvey canceled.")
		return
	case err != nil:
		log.Error().Err(err).Msg("survey failed")
		return
	}

	printAnswers(os.Stdout, answers)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
