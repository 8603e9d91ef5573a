// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNotFound matches any *NotFoundError via errors.Is.
var ErrNotFound = errors.New("title not found")

// NotFoundError reports a title missing from the catalog together with the
// closest catalog titles.
type NotFoundError struct {
	Title       string
	Suggestions []string
}

// Error renders the title and its suggestions.
func (e *NotFoundError) Error() string {
	var b strings.Builder
	b.WriteString("title not found: ")
	b.WriteString(strconv.Quote(e.Title))

	if len(e.Suggestions) == 0 {
		b.WriteString("; no suggestions")
		return b.String()
	}

	b.WriteString("; suggestions: ")
	for i, s := range e.Suggestions {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(s))
	}
	return b.String()
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
