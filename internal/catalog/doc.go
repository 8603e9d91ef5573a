// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package catalog holds the movie records that recommendations are drawn from.
//
// A Catalog is built once at startup and never changes. It keeps movies in
// their source order, which is also the tie-break order for equal
// similarity scores, and indexes them by exact title.
//
// # Sources
//
//   - Builtin: the dataset embedded in the binary (data/movies.yaml)
//   - Load: a .json, .yaml or .yml file
//
// Files may hold a bare list of movies or an object with a movies key:
//
//	movies:
//	  - title: Example
//	    year: 1999
//	    genres: [Drama]
//	    director: Someone
//	    cast: [A, B]
//	    summary: A short plot outline.
//
// Every record is validated; titles must be non-blank and unique and years
// must not be negative.
package catalog
