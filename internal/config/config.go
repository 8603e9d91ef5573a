// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"

	"github.com/tomtom215/cinematch/internal/validation"
)

// Config holds all application configuration.
type Config struct {
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// CatalogConfig selects the movie catalog.
type CatalogConfig struct {
	// Path is a .json, .yaml or .yml catalog file. Empty selects the
	// built-in catalog.
	Path string `koanf:"path"`
}

// RecommendConfig holds recommender tuning.
type RecommendConfig struct {
	DefaultK         int           `koanf:"default_k" validate:"gte=0,lte=1000"`
	SuggestionLimit  int           `koanf:"suggestion_limit" validate:"gte=0,lte=100"`
	SuggestionCutoff float64       `koanf:"suggestion_cutoff" validate:"gte=0,lte=1"`
	ExplainTerms     int           `koanf:"explain_terms" validate:"gte=0,lte=50"`
	Weights          WeightsConfig `koanf:"weights"`
}

// WeightsConfig sets per-field token repetition for profiles.
type WeightsConfig struct {
	Summary  int `koanf:"summary" validate:"gte=0,lte=100"`
	Genres   int `koanf:"genres" validate:"gte=0,lte=100"`
	Director int `koanf:"director" validate:"gte=0,lte=100"`
	Cast     int `koanf:"cast" validate:"gte=0,lte=100"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level   string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal panic disabled"`
	Format  string `koanf:"format" validate:"oneof=console json"`
	Caller  bool   `koanf:"caller"`
	NoColor bool   `koanf:"no_color"`
}

// Validate checks field ranges and cross-field rules.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	w := c.Recommend.Weights
	if w.Summary+w.Genres+w.Director+w.Cast == 0 {
		return fmt.Errorf("recommend.weights: at least one weight must be positive")
	}

	return nil
}
