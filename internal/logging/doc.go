// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package logging provides the process-wide zerolog logger for Cinematch.
//
// Log output always goes to stderr; stdout is reserved for recommendation
// results so the CLI can be piped.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("movies", n).Msg("Catalog loaded")
//	logging.Err(err).Msg("Query failed")
//
// # Query IDs
//
// Every CLI or interactive query is tagged with a UUID so that the debug
// events of a single lookup can be grouped:
//
//	ctx := logging.ContextWithNewQueryID(context.Background())
//	logging.Ctx(ctx).Debug().Str("title", t).Msg("Recommend")
//
// # Configuration
//
// Settings come from the logging section of the config file or from
// LOG_LEVEL, LOG_FORMAT and LOG_CALLER (see internal/config).
//
// Components log through a child tagged with a component field. The
// recommender adds its own tag, so it is handed the plain global logger:
//
//	logger := logging.WithComponent("catalog")
//	rec, err := recommend.NewRecommender(cat, cfg, logging.Logger())
package logging
