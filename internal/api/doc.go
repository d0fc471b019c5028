// Reelmood - Mood-Based Movie Discovery
// Copyright 2026 Reelmood contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmood/reelmood

/*
Package api provides HTTP routing and handlers using the chi router.

Routes:

	POST /api/v1/recommendations   mood-based recommendations
	GET  /api/v1/trending          trending passthrough
	GET  /api/v1/moods             mood registry listing
	GET  /api/v1/movies/{id}       movie details passthrough
	GET  /api/v1/search            title search
	GET  /api/v1/health[/live|/ready]
	GET  /metrics                  Prometheus

The middleware stack is built from the chi ecosystem: request IDs wired
into the logging context, RealIP, panic recovery, go-chi/cors,
go-chi/httprate rate limiting, security headers, Prometheus
instrumentation, and gzip compression. JSON is encoded with
goccy/go-json.
*/
package api
