// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package tui implements the interactive terminal browser started by
// `cinematch -interactive`.
//
// Keys:
//
//	enter      recommend for the typed title, or the highlighted one when
//	           the input is empty
//	up, down   move the highlight
//	tab        copy the highlighted title into the input
//	esc        quit (also ctrl+c)
//
// Unknown titles list the closest catalog titles instead of results.
package tui
