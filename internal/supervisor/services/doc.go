// Reelmood - Mood-Based Movie Discovery
// Copyright 2026 Reelmood contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmood/reelmood

// Package services contains suture.Service adapters for components with
// their own lifecycle conventions, currently the HTTP server.
package services
