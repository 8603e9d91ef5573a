// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// queryRunner wraps a Recommender with per-query IDs, logging and metrics.
// It satisfies tui.Recommender.
type queryRunner struct {
	rec    *recommend.Recommender
	source string
}

func newQueryRunner(rec *recommend.Recommender, source string) *queryRunner {
	return &queryRunner{rec: rec, source: source}
}

// Recommend runs one query. Errors from the Recommender are returned as is.
func (q *queryRunner) Recommend(title string, k int) ([]recommend.Recommendation, error) {
	ctx := logging.ContextWithNewQueryID(context.Background())
	logger := logging.Ctx(ctx)

	start := time.Now()
	recs, err := q.rec.Recommend(title, k)
	elapsed := time.Since(start)

	var notFound *recommend.NotFoundError
	switch {
	case err == nil:
		metrics.RecordQuery(q.source, metrics.OutcomeOK, elapsed, len(recs), 0)
		logger.Info().
			Str("title", title).
			Int("k", k).
			Int("results", len(recs)).
			Dur("elapsed", elapsed).
			Msg("query answered")
	case errors.As(err, &notFound):
		metrics.RecordQuery(q.source, metrics.OutcomeNotFound, elapsed, 0, len(notFound.Suggestions))
		logger.Info().
			Str("title", title).
			Strs("suggestions", notFound.Suggestions).
			Msg("title not found")
	default:
		metrics.RecordQuery(q.source, metrics.OutcomeError, elapsed, 0, 0)
		logger.Error().Err(err).Str("title", title).Msg("query failed")
	}

	return recs, err
}

// DefaultK returns the configured result count.
func (q *queryRunner) DefaultK() int {
	return q.rec.DefaultK()
}
