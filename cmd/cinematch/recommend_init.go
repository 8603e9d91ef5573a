// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// buildLoggingConfig maps the logging section onto logging.Config.
func buildLoggingConfig(cfg *config.Config, out io.Writer) logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = cfg.Logging.Level
	lc.Format = cfg.Logging.Format
	lc.Caller = cfg.Logging.Caller
	lc.NoColor = cfg.Logging.NoColor
	lc.Output = out
	return lc
}

// buildRecommendConfig creates the recommender configuration from app config.
func buildRecommendConfig(cfg *config.Config) *recommend.Config {
	return &recommend.Config{
		Weights: recommend.FieldWeights{
			Summary:  cfg.Recommend.Weights.Summary,
			Genres:   cfg.Recommend.Weights.Genres,
			Director: cfg.Recommend.Weights.Director,
			Cast:     cfg.Recommend.Weights.Cast,
		},
		DefaultK: cfg.Recommend.DefaultK,
		Suggestions: recommend.SuggestionConfig{
			Limit:  cfg.Recommend.SuggestionLimit,
			Cutoff: cfg.Recommend.SuggestionCutoff,
		},
		ExplainTerms: cfg.Recommend.ExplainTerms,
	}
}

// loadCatalog opens the configured catalog file, or the built-in catalog
// when path is empty.
func loadCatalog(path string) (*catalog.Catalog, error) {
	source := "builtin"
	load := catalog.Builtin
	if path != "" {
		source = "file"
		load = func() (*catalog.Catalog, error) { return catalog.Load(path) }
	}

	start := time.Now()
	cat, err := load()
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)
	metrics.RecordCatalogLoad(source, cat.Len(), elapsed)

	logger := logging.WithComponent("catalog")
	logger.Debug().
		Str("source", source).
		Str("path", path).
		Int("movies", cat.Len()).
		Dur("elapsed", elapsed).
		Msg("catalog loaded")

	return cat, nil
}

// initRecommender loads the catalog and builds the recommender.
func initRecommender(cfg *config.Config) (*recommend.Recommender, error) {
	cat, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	rec, err := recommend.NewRecommender(cat, buildRecommendConfig(cfg), logging.Logger())
	if err != nil {
		return nil, fmt.Errorf("build recommender: %w", err)
	}
	return rec, nil
}
