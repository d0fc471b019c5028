// Reelmood - Mood-Based Movie Discovery
// Copyright 2026 Reelmood contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmood/reelmood

// Package supervisor builds the suture/v4 supervision tree that runs
// the service's long-lived components. Supervisor events are logged
// through sutureslog into the application's zerolog sink via the slog
// adapter in internal/logging.
package supervisor
