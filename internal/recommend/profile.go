// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"math"

	"github.com/tomtom215/cinematch/internal/catalog"
)

// FieldWeights sets how many times each token of a field is counted in a
// profile. A weight of zero leaves the field out.
type FieldWeights struct {
	Summary  int `json:"summary"`
	Genres   int `json:"genres"`
	Director int `json:"director"`
	Cast     int `json:"cast"`
}

// DefaultFieldWeights counts categorical fields twice as much as the summary.
func DefaultFieldWeights() FieldWeights {
	return FieldWeights{
		Summary:  1,
		Genres:   2,
		Director: 2,
		Cast:     2,
	}
}

// TermVector is a sparse term-frequency vector. The zero value is an empty
// vector. A TermVector is never modified after construction.
type TermVector struct {
	counts     map[string]int
	sumSquares int
}

// NewTermVector builds a vector from token counts. Non-positive counts are
// dropped. The map is copied.
func NewTermVector(counts map[string]int) TermVector {
	tv := TermVector{counts: make(map[string]int, len(counts))}
	for term, n := range counts {
		if n <= 0 {
			continue
		}
		tv.counts[term] = n
		tv.sumSquares += n * n
	}
	return tv
}

// Len returns the number of distinct terms.
func (tv TermVector) Len() int {
	return len(tv.counts)
}

// IsEmpty reports whether the vector has no terms.
func (tv TermVector) IsEmpty() bool {
	return len(tv.counts) == 0
}

// Count returns the count of term, or 0.
func (tv TermVector) Count(term string) int {
	return tv.counts[term]
}

// Norm returns the Euclidean magnitude.
func (tv TermVector) Norm() float64 {
	return math.Sqrt(float64(tv.sumSquares))
}

// BuildProfile turns a movie into its weighted term vector: summary tokens,
// then each genre, the director and each cast member, every token counted
// as many times as its field's weight.
//
//nolint:gocritic // catalog.Movie is passed by value like the rest of the API
func BuildProfile(m catalog.Movie, w FieldWeights) TermVector {
	counts := make(map[string]int)

	add := func(text string, weight int) {
		if weight <= 0 {
			return
		}
		for _, tok := range Tokenize(text) {
			counts[tok] += weight
		}
	}

	add(m.Summary, w.Summary)
	for _, g := range m.Genres {
		add(g, w.Genres)
	}
	add(m.Director, w.Director)
	for _, c := range m.Cast {
		add(c, w.Cast)
	}

	return NewTermVector(counts)
}
