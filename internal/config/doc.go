// Reelmood - Mood-Based Movie Discovery
// Copyright 2026 Reelmood contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmood/reelmood

// Package config loads and validates service configuration.
//
// Configuration is layered with koanf: struct defaults, then an optional
// YAML file (config.yaml or CONFIG_PATH), then environment variables.
// The TMDB API key is required and validated at load time so a
// misconfigured deployment fails fast instead of erroring on the first
// upstream call.
package config
