// Reelmood - Mood-Based Movie Discovery
// Copyright 2026 Reelmood contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmood/reelmood

// Package validation provides struct validation using
// go-playground/validator v10 behind a thread-safe singleton, with
// error translation to human-readable messages for API responses.
//
//	type SearchRequest struct {
//	    Query string `validate:"required,min=1"`
//	    Page  int    `validate:"min=1,max=500"`
//	}
//
//	if err := validation.ValidateStruct(&req); err != nil {
//	    respondError(w, http.StatusBadRequest, err.Error())
//	    return
//	}
package validation
