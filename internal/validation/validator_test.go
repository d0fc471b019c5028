// Reelmood - Mood-Based Movie Discovery
// Copyright 2026 Reelmood contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmood/reelmood

package validation

import (
	"strings"
	"testing"
)

type searchRequest struct {
	Query string `validate:"required,min=1,max=200"`
	Page  int    `validate:"min=1,max=500"`
}

func TestValidateStructPasses(t *testing.T) {
	req := searchRequest{Query: "heat", Page: 1}
	if err := ValidateStruct(&req); err != nil {
		t.Fatalf("expected valid struct, got: %v", err)
	}
}

func TestValidateStructRequired(t *testing.T) {
	req := searchRequest{Page: 1}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error for missing query")
	}
	if len(err.Errors()) != 1 {
		t.Fatalf("expected 1 error, got %d", len(err.Errors()))
	}
	fieldErr := err.Errors()[0]
	if fieldErr.Field() != "Query" || fieldErr.Tag() != "required" {
		t.Errorf("unexpected field error: %s/%s", fieldErr.Field(), fieldErr.Tag())
	}
	if !strings.Contains(err.Error(), "Query is required") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestValidateStructRangeMessages(t *testing.T) {
	req := searchRequest{Query: "heat", Page: 9999}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error for page out of range")
	}
	if !strings.Contains(err.Error(), "Page must be at most 500") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestValidateStructMultipleErrors(t *testing.T) {
	req := searchRequest{Query: "", Page: 0}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation errors")
	}
	if len(err.Errors()) != 2 {
		t.Errorf("expected 2 errors, got %d", len(err.Errors()))
	}
}

func TestGetValidatorSingleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("expected the same validator instance across calls")
	}
}
