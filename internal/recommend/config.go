// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Config contains all configuration for the recommender.
type Config struct {
	// Weights sets per-field token repetition when building profiles.
	Weights FieldWeights `json:"weights"`

	// DefaultK is the result count used when the caller does not pass one.
	// Default: 3.
	DefaultK int `json:"default_k"`

	// Suggestions controls the fallback list for unknown titles.
	Suggestions SuggestionConfig `json:"suggestions"`

	// ExplainTerms is how many shared terms are attached to each result.
	// Zero disables explanations. Default: 5.
	ExplainTerms int `json:"explain_terms"`
}

// SuggestionConfig controls close-match suggestions.
type SuggestionConfig struct {
	// Limit is the maximum number of suggestions. Default: 5.
	Limit int `json:"limit"`

	// Cutoff is the minimum sequence-similarity ratio, in [0, 1]. Default: 0.4.
	Cutoff float64 `json:"cutoff"`
}

// DefaultConfig returns the default recommender configuration.
func DefaultConfig() *Config {
	return &Config{
		Weights:  DefaultFieldWeights(),
		DefaultK: 3,
		Suggestions: SuggestionConfig{
			Limit:  5,
			Cutoff: 0.4,
		},
		ExplainTerms: 5,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	w := c.Weights
	if w.Summary < 0 || w.Genres < 0 || w.Director < 0 || w.Cast < 0 {
		return fmt.Errorf("weights must be non-negative, got %+v", w)
	}
	if w.Summary+w.Genres+w.Director+w.Cast == 0 {
		return fmt.Errorf("at least one field weight must be positive")
	}

	if c.DefaultK < 0 {
		return fmt.Errorf("default_k must be non-negative, got %d", c.DefaultK)
	}

	if c.Suggestions.Limit < 0 {
		return fmt.Errorf("suggestions.limit must be non-negative, got %d", c.Suggestions.Limit)
	}
	if c.Suggestions.Cutoff < 0 || c.Suggestions.Cutoff > 1 {
		return fmt.Errorf("suggestions.cutoff must be in [0, 1], got %f", c.Suggestions.Cutoff)
	}

	if c.ExplainTerms < 0 {
		return fmt.Errorf("explain_terms must be non-negative, got %d", c.ExplainTerms)
	}

	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// String returns the configuration as JSON.
func (c *Config) String() string {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Sprintf("Config{error: %v}", err)
	}
	return string(data)
}
