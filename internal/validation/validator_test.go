// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

type testRecord struct {
	Title  string   `yaml:"title" validate:"required,notblank"`
	Year   int      `json:"year" validate:"gte=0,lte=3000"`
	Tags   []string `koanf:"tags" validate:"max=3,dive,notblank"`
	Format string   `koanf:"format" validate:"omitempty,oneof=json console"`
	Plain  int      `validate:"min=1"`
}

type testNested struct {
	Record testRecord `koanf:"record"`
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input testRecord
	}{
		{
			name:  "all fields",
			input: testRecord{Title: "A", Year: 2001, Tags: []string{"x"}, Format: "json", Plain: 1},
		},
		{
			name:  "optional fields empty",
			input: testRecord{Title: "A", Plain: 5},
		},
		{
			name:  "boundary values",
			input: testRecord{Title: "A", Year: 3000, Tags: []string{"a", "b", "c"}, Plain: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateStruct(&tt.input); err != nil {
				t.Errorf("ValidateStruct() returned unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     testRecord
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{
			name:      "missing title",
			input:     testRecord{Plain: 1},
			wantField: "title",
			wantTag:   "required",
			wantMsg:   "title is required",
		},
		{
			name:      "blank title",
			input:     testRecord{Title: "   ", Plain: 1},
			wantField: "title",
			wantTag:   "notblank",
			wantMsg:   "title must not be blank",
		},
		{
			name:      "negative year",
			input:     testRecord{Title: "A", Year: -1, Plain: 1},
			wantField: "year",
			wantTag:   "gte",
			wantMsg:   "year must be greater than or equal to 0",
		},
		{
			name:      "too many tags",
			input:     testRecord{Title: "A", Tags: []string{"a", "b", "c", "d"}, Plain: 1},
			wantField: "tags",
			wantTag:   "max",
			wantMsg:   "tags must be at most 3 items",
		},
		{
			name:      "blank tag element",
			input:     testRecord{Title: "A", Tags: []string{"a", ""}, Plain: 1},
			wantField: "tags[1]",
			wantTag:   "notblank",
		},
		{
			name:      "unknown format",
			input:     testRecord{Title: "A", Format: "xml", Plain: 1},
			wantField: "format",
			wantTag:   "oneof",
			wantMsg:   "format must be one of: json console",
		},
		{
			name:      "untagged field uses Go name",
			input:     testRecord{Title: "A"},
			wantField: "Plain",
			wantTag:   "min",
			wantMsg:   "Plain must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("ValidateStruct() expected error, got nil")
			}
			if !err.Has(tt.wantField, tt.wantTag) {
				t.Errorf("ValidateStruct() errors = %v, want field %q tag %q", err, tt.wantField, tt.wantTag)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Error() = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateStruct_NestedPath(t *testing.T) {
	err := ValidateStruct(&testNested{Record: testRecord{Title: "A", Year: 4000, Plain: 1}})
	if err == nil {
		t.Fatal("ValidateStruct() expected error, got nil")
	}
	if !err.Has("record.year", "lte") {
		t.Errorf("ValidateStruct() errors = %v, want record.year/lte", err)
	}
	if got := err.Error(); got != "record.year must be less than or equal to 3000" {
		t.Errorf("Error() = %q", got)
	}
}

func TestErrors_MultipleJoined(t *testing.T) {
	err := ValidateStruct(&testRecord{Year: -5})
	if err == nil {
		t.Fatal("ValidateStruct() expected error, got nil")
	}
	if n := len(err.Fields()); n != 3 {
		t.Fatalf("len(Fields()) = %d, want 3", n)
	}
	if !strings.Contains(err.Error(), "; ") {
		t.Errorf("Error() = %q, want messages joined with '; '", err.Error())
	}
	fe := err.Fields()[1]
	if fe.Value() != -5 || fe.Param() != "0" {
		t.Errorf("Fields()[1] = value %v param %q, want -5 and \"0\"", fe.Value(), fe.Param())
	}
}

func TestErrors_Empty(t *testing.T) {
	var ve Errors
	if got := ve.Error(); got != "validation failed" {
		t.Errorf("Error() = %q, want %q", got, "validation failed")
	}
}
