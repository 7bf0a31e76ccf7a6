// Cinelog - Movie Catalog Search & CRUD API
// Copyright 2026 Cinelog contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelog/cinelog

package validation

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	Title       string   `validate:"required"`
	Runtime     *int     `validate:"omitempty,gte=0"`
	VoteAverage *float64 `validate:"omitempty,gte=0,lte=10"`
}

func TestGetValidatorSingleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator must return the same instance")
	}
}

func TestValidateStructPasses(t *testing.T) {
	runtime := 120
	if err := ValidateStruct(&sampleRequest{Title: "ok", Runtime: &runtime}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateStructOmitemptySkipsNil(t *testing.T) {
	if err := ValidateStruct(&sampleRequest{Title: "ok"}); err != nil {
		t.Errorf("nil optional fields must pass: %v", err)
	}
}

func TestValidateStructFailures(t *testing.T) {
	neg := -1
	over := 10.5

	tests := []struct {
		name      string
		req       sampleRequest
		wantField string
		wantTag   string
	}{
		{"missing title", sampleRequest{}, "Title", "required"},
		{"negative runtime", sampleRequest{Title: "x", Runtime: &neg}, "Runtime", "gte"},
		{"rating above scale", sampleRequest{Title: "x", VoteAverage: &over}, "VoteAverage", "lte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.req)
			if err == nil {
				t.Fatal("expected validation error")
			}

			fields := err.Fields()
			if len(fields) != 1 {
				t.Fatalf("got %d field errors, want 1: %+v", len(fields), fields)
			}
			if fields[0].Field != tt.wantField || fields[0].Tag != tt.wantTag {
				t.Errorf("field error = %+v, want field %s tag %s", fields[0], tt.wantField, tt.wantTag)
			}
			if fields[0].Message == "" {
				t.Error("missing translated message")
			}
		})
	}
}

func TestRequestErrorMessageJoins(t *testing.T) {
	err := ValidateStruct(&sampleRequest{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Title is required") {
		t.Errorf("Error() = %q", err.Error())
	}
}
