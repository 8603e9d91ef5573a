// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"cmp"
	"slices"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// TitleMatch is a candidate title and its sequence-similarity ratio.
type TitleMatch struct {
	Title string
	Ratio float64
}

// CloseMatches returns up to n candidates whose Ratcliff/Obershelp ratio
// (2*M/T, compared rune by rune) against query is at least cutoff. Results
// are ordered by ratio descending, then by candidate descending.
func CloseMatches(query string, candidates []string, n int, cutoff float64) []string {
	matches := ScoreMatches(query, candidates, n, cutoff)
	if len(matches) == 0 {
		return nil
	}

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Title
	}
	return out
}

// ScoreMatches is CloseMatches with the ratios kept.
func ScoreMatches(query string, candidates []string, n int, cutoff float64) []TitleMatch {
	if n <= 0 {
		return nil
	}

	sm := difflib.NewMatcher(nil, nil)
	sm.SetSeq2(runes(query))

	var matches []TitleMatch
	for _, c := range candidates {
		sm.SetSeq1(runes(c))
		// Cheap upper bounds first.
		if sm.RealQuickRatio() < cutoff || sm.QuickRatio() < cutoff {
			continue
		}
		if r := sm.Ratio(); r >= cutoff {
			matches = append(matches, TitleMatch{Title: c, Ratio: r})
		}
	}

	slices.SortFunc(matches, func(a, b TitleMatch) int {
		if c := cmp.Compare(b.Ratio, a.Ratio); c != 0 {
			return c
		}
		return strings.Compare(b.Title, a.Title)
	})

	if len(matches) > n {
		matches = matches[:n]
	}
	return matches
}

// runes splits s into single-rune strings.
func runes(s string) []string {
	return strings.Split(s, "")
}
