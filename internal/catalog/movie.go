// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"fmt"
	"slices"
)

// Movie is a single catalog record. Title is the unique key.
type Movie struct {
	Title    string   `json:"title" yaml:"title" validate:"required,notblank"`
	Year     int      `json:"year" yaml:"year" validate:"gte=0"`
	Genres   []string `json:"genres,omitempty" yaml:"genres,omitempty" validate:"dive,notblank"`
	Director string   `json:"director,omitempty" yaml:"director,omitempty"`
	Cast     []string `json:"cast,omitempty" yaml:"cast,omitempty" validate:"dive,notblank"`
	Summary  string   `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// Label renders the movie as "Title (Year)".
func (m Movie) Label() string {
	return fmt.Sprintf("%s (%d)", m.Title, m.Year)
}

// clone returns a deep copy so callers cannot alias catalog slices.
func (m Movie) clone() Movie {
	m.Genres = slices.Clone(m.Genres)
	m.Cast = slices.Clone(m.Cast)
	return m
}
