// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/catalog"
)

// Recommendation is one ranked result.
type Recommendation struct {
	Title string  `json:"title"`
	Year  int     `json:"year"`
	Score float64 `json:"score"`

	// SharedTerms lists the tokens that contributed most to Score.
	SharedTerms []string `json:"shared_terms,omitempty"`
}

// Recommender ranks catalog movies by content similarity to a reference
// movie. Profiles are built once by NewRecommender; after that the
// Recommender is read-only and safe for concurrent use.
type Recommender struct {
	config   *Config
	logger   zerolog.Logger
	catalog  *catalog.Catalog
	titles   []string
	profiles []TermVector
}

// NewRecommender validates cfg and precomputes a profile for every movie
// in cat. A nil cfg selects DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRecommender(cat *catalog.Catalog, cfg *Config, logger zerolog.Logger) (*Recommender, error) {
	if cat == nil {
		return nil, errors.New("catalog is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	r := &Recommender{
		config:   cfg.Clone(),
		logger:   logger.With().Str("component", "recommend").Logger(),
		catalog:  cat,
		titles:   cat.Titles(),
		profiles: make([]TermVector, cat.Len()),
	}

	empty := 0
	for i := range r.profiles {
		r.profiles[i] = BuildProfile(cat.At(i), r.config.Weights)
		if r.profiles[i].IsEmpty() {
			empty++
		}
	}

	r.logger.Debug().
		Int("movies", len(r.profiles)).
		Int("empty_profiles", empty).
		Interface("weights", r.config.Weights).
		Msg("profiles built")

	return r, nil
}

// Recommend returns up to k movies most similar to title, best first.
// The reference movie is never included and equal scores keep catalog
// order. k <= 0 yields an empty result. An unknown title yields a
// *NotFoundError carrying close-match suggestions.
func (r *Recommender) Recommend(title string, k int) ([]Recommendation, error) {
	idx := r.catalog.Index(title)
	if idx < 0 {
		err := &NotFoundError{Title: title, Suggestions: r.Suggest(title)}
		r.logger.Debug().
			Str("title", title).
			Strs("suggestions", err.Suggestions).
			Msg("title not in catalog")
		return nil, err
	}

	if k <= 0 {
		return []Recommendation{}, nil
	}

	ref := r.profiles[idx]
	type candidate struct {
		index int
		score float64
	}

	candidates := make([]candidate, 0, len(r.profiles)-1)
	for i := range r.profiles {
		if i == idx {
			continue
		}
		candidates = append(candidates, candidate{index: i, score: CosineSimilarity(ref, r.profiles[i])})
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Compare(b.score, a.score)
	})

	if k < len(candidates) {
		candidates = candidates[:k]
	}

	recs := make([]Recommendation, len(candidates))
	for i, c := range candidates {
		m := r.catalog.At(c.index)
		recs[i] = Recommendation{
			Title:       m.Title,
			Year:        m.Year,
			Score:       c.score,
			SharedTerms: termNames(SharedTerms(ref, r.profiles[c.index], r.config.ExplainTerms)),
		}
	}

	r.logger.Debug().
		Str("title", title).
		Int("k", k).
		Int("returned", len(recs)).
		Msg("recommendations ranked")

	return recs, nil
}

// Suggest returns catalog titles that closely resemble title.
func (r *Recommender) Suggest(title string) []string {
	return CloseMatches(title, r.titles, r.config.Suggestions.Limit, r.config.Suggestions.Cutoff)
}

// Similarity returns the cosine similarity between two catalog movies.
func (r *Recommender) Similarity(a, b string) (float64, error) {
	pa, err := r.profileOrError(a)
	if err != nil {
		return 0, err
	}
	pb, err := r.profileOrError(b)
	if err != nil {
		return 0, err
	}
	return CosineSimilarity(pa, pb), nil
}

// profile returns the precomputed vector for title.
func (r *Recommender) profile(title string) (TermVector, bool) {
	idx := r.catalog.Index(title)
	if idx < 0 {
		return TermVector{}, false
	}
	return r.profiles[idx], true
}

// Movie returns the catalog record for title.
func (r *Recommender) Movie(title string) (catalog.Movie, bool) {
	return r.catalog.Get(title)
}

// Len returns the number of indexed movies.
func (r *Recommender) Len() int {
	return len(r.profiles)
}

// Titles returns the indexed titles in catalog order.
func (r *Recommender) Titles() []string {
	return slices.Clone(r.titles)
}

// DefaultK returns the configured default result count.
func (r *Recommender) DefaultK() int {
	return r.config.DefaultK
}

func (r *Recommender) profileOrError(title string) (TermVector, error) {
	p, ok := r.profile(title)
	if !ok {
		return TermVector{}, &NotFoundError{Title: title, Suggestions: r.Suggest(title)}
	}
	return p, nil
}

func termNames(shared []SharedTerm) []string {
	if len(shared) == 0 {
		return nil
	}
	names := make([]string, len(shared))
	for i, s := range shared {
		names[i] = s.Term
	}
	return names
}
