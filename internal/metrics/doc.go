// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package metrics provides Prometheus instrumentation for Cinematch.
//
// Metrics are registered on the default registry at package init. The CLI
// has no HTTP surface, so they are read by dumping the text exposition
// format on exit (cinematch -metrics).
//
// # Metrics
//
//   - cinematch_queries_total{source,outcome}
//   - cinematch_query_duration_seconds{source}
//   - cinematch_query_results
//   - cinematch_suggestions_total
//   - cinematch_catalog_movies
//   - cinematch_catalog_load_duration_seconds{source}
//
// Outcomes are ok, not_found and error. Sources are cli and interactive.
package metrics
