// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"math"
	"testing"

	"github.com/tomtom215/cinematch/internal/catalog"
)

const scoreTolerance = 1e-12

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= scoreTolerance
}

var camara = catalog.Movie{
	Title:    "Harry Potter y la cámara secreta",
	Year:     2002,
	Genres:   []string{"Aventura", "Fantasía", "Misterio"},
	Director: "Chris Columbus",
	Cast:     []string{"Daniel Radcliffe", "Emma Watson", "Rupert Grint"},
	Summary:  "Un misterio en la escuela pone en peligro a los estudiantes y a la comunidad mágica.",
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    map[string]int
		b    map[string]int
		want float64
	}{
		{name: "both empty", a: nil, b: nil, want: 0},
		{name: "one empty", a: map[string]int{"x": 1}, b: nil, want: 0},
		{name: "disjoint", a: map[string]int{"x": 1, "y": 2}, b: map[string]int{"z": 3}, want: 0},
		{name: "identical", a: map[string]int{"x": 1, "y": 2}, b: map[string]int{"x": 1, "y": 2}, want: 1},
		{name: "scaled", a: map[string]int{"x": 1, "y": 2}, b: map[string]int{"x": 3, "y": 6}, want: 1},
		{name: "partial overlap", a: map[string]int{"x": 1, "y": 1}, b: map[string]int{"x": 1, "z": 1}, want: 0.5},
		{name: "3-4-5", a: map[string]int{"x": 3, "y": 4}, b: map[string]int{"x": 1}, want: 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(NewTermVector(tt.a), NewTermVector(tt.b))
			if !approxEqual(got, tt.want) {
				t.Errorf("CosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineSimilarity_ReferenceMovies(t *testing.T) {
	a := BuildProfile(piedra, DefaultFieldWeights())
	b := BuildProfile(camara, DefaultFieldWeights())

	// dot 45, squared norms 59 and 70.
	if got := dotProduct(a, b); got != 45 {
		t.Errorf("dotProduct() = %d, want 45", got)
	}
	if got := CosineSimilarity(a, b); !approxEqual(got, 0.7002247996006618) {
		t.Errorf("CosineSimilarity(piedra, camara) = %.16f, want 0.7002247996006618", got)
	}
}

func TestCosineSimilarity_Properties(t *testing.T) {
	vectors := []TermVector{
		BuildProfile(piedra, DefaultFieldWeights()),
		BuildProfile(camara, DefaultFieldWeights()),
		NewTermVector(map[string]int{"a": 7, "b": 1, "c": 13}),
		NewTermVector(map[string]int{"a": 1}),
		NewTermVector(map[string]int{"q": 999999}),
		{},
	}

	for i, a := range vectors {
		if !a.IsEmpty() {
			if got := CosineSimilarity(a, a); got != 1.0 {
				t.Errorf("CosineSimilarity(v%d, v%d) = %v, want exactly 1", i, i, got)
			}
		}
		for j, b := range vectors {
			ab := CosineSimilarity(a, b)
			ba := CosineSimilarity(b, a)
			if ab != ba {
				t.Errorf("CosineSimilarity not symmetric for v%d,v%d: %v != %v", i, j, ab, ba)
			}
			if ab < 0 || ab > 1 {
				t.Errorf("CosineSimilarity(v%d, v%d) = %v, out of [0, 1]", i, j, ab)
			}
		}
	}
}

func TestSharedTerms(t *testing.T) {
	a := BuildProfile(piedra, DefaultFieldWeights())
	b := BuildProfile(camara, DefaultFieldWeights())

	got := SharedTerms(a, b, 5)
	want := []SharedTerm{
		{"aventura", 4}, {"chris", 4}, {"columbus", 4}, {"daniel", 4}, {"emma", 4},
	}
	if len(got) != len(want) {
		t.Fatalf("SharedTerms() returned %d terms, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SharedTerms()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	all := SharedTerms(a, b, 100)
	if len(all) != 14 {
		t.Errorf("SharedTerms(n=100) returned %d terms, want 14", len(all))
	}
	sum := 0
	for _, s := range all {
		sum += s.Contribution
	}
	if sum != dotProduct(a, b) {
		t.Errorf("contributions sum to %d, want dot product %d", sum, dotProduct(a, b))
	}
	if last := all[len(all)-1]; last.Term != "y" || last.Contribution != 1 {
		t.Errorf("last shared term = %+v, want {y 1}", last)
	}

	if got := SharedTerms(a, b, 0); got != nil {
		t.Errorf("SharedTerms(n=0) = %v, want nil", got)
	}
	if got := SharedTerms(a, TermVector{}, 3); len(got) != 0 {
		t.Errorf("SharedTerms(empty) = %v, want none", got)
	}
}
