// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"cmp"
	"math"
	"slices"
)

// CosineSimilarity returns (A·B) / (‖A‖·‖B‖) in [0, 1]. Empty or zero
// vectors score 0.
//
// Dot product and squared norms are summed as integers, so the result is
// exactly symmetric and a non-empty vector scores exactly 1 against itself.
func CosineSimilarity(a, b TermVector) float64 {
	if a.sumSquares == 0 || b.sumSquares == 0 {
		return 0
	}

	dot := dotProduct(a, b)
	if dot <= 0 {
		return 0
	}

	score := float64(dot) / math.Sqrt(float64(a.sumSquares)*float64(b.sumSquares))
	return min(score, 1)
}

// dotProduct iterates the smaller vector.
func dotProduct(a, b TermVector) int {
	small, large := a.counts, b.counts
	if len(small) > len(large) {
		small, large = large, small
	}

	dot := 0
	for term, n := range small {
		dot += n * large[term]
	}
	return dot
}

// SharedTerm is a token present in both vectors, with its share of the dot
// product.
type SharedTerm struct {
	Term         string
	Contribution int
}

// SharedTerms returns up to n tokens common to a and b ordered by
// contribution (descending), then token. n <= 0 returns nil.
func SharedTerms(a, b TermVector, n int) []SharedTerm {
	if n <= 0 {
		return nil
	}

	small, large := a.counts, b.counts
	if len(small) > len(large) {
		small, large = large, small
	}

	shared := make([]SharedTerm, 0, len(small))
	for term, x := range small {
		if y, ok := large[term]; ok {
			shared = append(shared, SharedTerm{Term: term, Contribution: x * y})
		}
	}

	slices.SortFunc(shared, func(p, q SharedTerm) int {
		if c := cmp.Compare(q.Contribution, p.Contribution); c != 0 {
			return c
		}
		return cmp.Compare(p.Term, q.Term)
	})

	if len(shared) > n {
		shared = shared[:n]
	}
	return shared
}
