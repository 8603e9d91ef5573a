// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric registered by this package.
const Namespace = "cinematch"

// Query outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Query sources.
const (
	SourceCLI         = "cli"
	SourceInteractive = "interactive"
)

var (
	// Recommendation queries
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "queries_total",
			Help:      "Total number of recommendation queries by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "query_duration_seconds",
			Help:      "Duration of recommendation queries in seconds",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{"source"},
	)

	ResultsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "query_results",
			Help:      "Number of recommendations returned per successful query",
			Buckets:   []float64{0, 1, 3, 5, 10, 25, 50},
		},
	)

	SuggestionsReturned = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "suggestions_total",
			Help:      "Total number of close-match titles offered for unknown titles",
		},
	)

	// Catalog
	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "catalog_movies",
			Help:      "Number of movies in the loaded catalog",
		},
	)

	CatalogLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "catalog_load_duration_seconds",
			Help:      "Time to read, parse and validate a catalog",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"source"}, // "builtin", "file"
	)
)

// RecordQuery records one recommendation query. results is the number of
// recommendations returned and suggestions the number of close matches
// offered for a missing title.
func RecordQuery(source, outcome string, duration time.Duration, results, suggestions int) {
	QueriesTotal.WithLabelValues(source, outcome).Inc()
	QueryDuration.WithLabelValues(source).Observe(duration.Seconds())

	switch outcome {
	case OutcomeOK:
		ResultsReturned.Observe(float64(results))
	case OutcomeNotFound:
		SuggestionsReturned.Add(float64(suggestions))
	}
}

// RecordCatalogLoad records a catalog load and sets the movie gauge.
func RecordCatalogLoad(source string, movies int, duration time.Duration) {
	CatalogMovies.Set(float64(movies))
	CatalogLoadDuration.WithLabelValues(source).Observe(duration.Seconds())
}
