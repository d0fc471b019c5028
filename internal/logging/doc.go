// Reelmood - Mood-Based Movie Discovery
// Copyright 2026 Reelmood contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmood/reelmood

// Package logging provides structured logging built on zerolog.
//
// The package maintains a process-wide logger configured once at startup
// via Init. Request-scoped loggers carrying correlation and request IDs
// are obtained through Ctx, and an slog adapter bridges libraries that
// expect the standard library's structured logger.
package logging
