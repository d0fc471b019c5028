// Reelmood - Mood-Based Movie Discovery
// Copyright 2026 Reelmood contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmood/reelmood

/*
Package recommend implements the mood-based recommendation pipeline.

For a request the engine resolves the mood's genre preferences, fetches
genre-matched and trending titles concurrently, merges them with
insertion-ordered deduplication (genre results take priority), keeps
titles sharing at least one genre with the mood (falling back to the
full merged set when that filter empties), stable-ranks by rating, and
returns the top results with an explanatory message.

Upstream failures degrade per source rather than failing the request;
only an entirely empty candidate pool surfaces as ErrNoContent.
*/
package recommend
