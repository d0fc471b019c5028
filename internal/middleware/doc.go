// Reelmood - Mood-Based Movie Discovery
// Copyright 2026 Reelmood contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmood/reelmood

/*
Package middleware provides HTTP middleware components for the application.

Key components:

  - Compression: gzip compression for responses when the client accepts it
  - PrometheusMetrics: HTTP request/response instrumentation

These sit between the router-level middleware (CORS, rate limiting,
request IDs — see internal/api) and the business handlers.
*/
package middleware
