// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared by the whole process. It caches
// struct metadata, so catalog records and configuration structs are parsed
// once no matter how often they are checked.
//
// # Field Names
//
// Error messages use the field's koanf, yaml or json tag name, falling back
// to the Go field name. Nested fields are reported by path:
//
//	recommend.suggestion_cutoff must be less than or equal to 1
//
// # Custom Tags
//
//   - notblank: string must contain at least one non-whitespace rune
//
// # Usage
//
//	type Movie struct {
//	    Title string `yaml:"title" validate:"required,notblank"`
//	    Year  int    `yaml:"year" validate:"gte=0"`
//	}
//
//	if verr := validation.ValidateStruct(&m); verr != nil {
//	    return verr
//	}
//
// ValidateStruct returns a concrete *Errors. Callers that return it through
// an error interface must check for nil first.
package validation
