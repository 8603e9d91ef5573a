// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package recommend implements content-based movie recommendations.
//
// # Pipeline
//
// Every movie in the catalog is turned into a term-frequency vector once,
// when the Recommender is built:
//
//  1. Tokenize: lowercase runs of Unicode letters and digits
//  2. BuildProfile: summary tokens once, genre/director/cast tokens twice
//     (see FieldWeights)
//  3. CosineSimilarity: dot product over shared terms divided by the
//     product of magnitudes
//
// A query scores the reference movie against every other movie and returns
// the top k, best first. Equal scores keep catalog order.
//
// # Unknown Titles
//
// Lookup is exact and case-sensitive. A miss returns *NotFoundError with up
// to five catalog titles whose sequence-similarity ratio is at least 0.4:
//
//	recs, err := r.Recommend("Harry Potter y la piedra", 3)
//	var nf *recommend.NotFoundError
//	if errors.As(err, &nf) {
//	    fmt.Println(nf.Suggestions)
//	}
//
// # Usage
//
//	cat, _ := catalog.Builtin()
//	r, err := recommend.NewRecommender(cat, recommend.DefaultConfig(), logger)
//	recs, err := r.Recommend("Harry Potter y la piedra filosofal", 3)
//
// # Thread Safety
//
// A Recommender is immutable after construction. Concurrent calls need no
// locking.
package recommend
