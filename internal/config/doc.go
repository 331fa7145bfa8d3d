// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the settings of the default console and logger.
//
// Configuration is assembled from several sources, later ones overriding
// non-zero fields of earlier ones:
//  1. Defaults
//  2. JSON or YAML config file
//  3. Environment variables prefixed with INPUTGUARD_ (a .env file in the
//     working directory is loaded first)
//  4. Command-line flags
//
// The main entry point is [GetStructuredConfig].
package config
