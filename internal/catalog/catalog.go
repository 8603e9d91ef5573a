// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"errors"
	"fmt"

	"github.com/tomtom215/cinematch/internal/validation"
)

var (
	// ErrEmptyCatalog is returned when a catalog has no movies.
	ErrEmptyCatalog = errors.New("catalog contains no movies")

	// ErrDuplicateTitle is returned when two movies share a title.
	ErrDuplicateTitle = errors.New("duplicate movie title")

	// ErrUnsupportedFormat is returned for catalog files that are neither JSON nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// Catalog is an immutable, ordered collection of movies indexed by title.
// All methods are safe for concurrent use.
type Catalog struct {
	movies []Movie
	index  map[string]int
}

// New validates movies and builds a catalog preserving their order.
// The input slice is copied.
func New(movies []Movie) (*Catalog, error) {
	if len(movies) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		movies: make([]Movie, len(movies)),
		index:  make(map[string]int, len(movies)),
	}

	for i := range movies {
		m := &movies[i]
		if verr := validation.ValidateStruct(m); verr != nil {
			return nil, fmt.Errorf("movie #%d (%q): %w", i+1, m.Title, verr)
		}
		if prev, dup := c.index[m.Title]; dup {
			return nil, fmt.Errorf("%w: %q at #%d and #%d", ErrDuplicateTitle, m.Title, prev+1, i+1)
		}
		c.index[m.Title] = i
		c.movies[i] = m.clone()
	}

	return c, nil
}

// Len returns the number of movies.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// Get looks up a movie by exact, case-sensitive title.
func (c *Catalog) Get(title string) (Movie, bool) {
	i, ok := c.index[title]
	if !ok {
		return Movie{}, false
	}
	return c.movies[i].clone(), true
}

// Index returns the catalog position of title, or -1.
func (c *Catalog) Index(title string) int {
	if i, ok := c.index[title]; ok {
		return i
	}
	return -1
}

// At returns the movie at position i. It panics if i is out of range.
func (c *Catalog) At(i int) Movie {
	return c.movies[i].clone()
}

// Titles returns all titles in catalog order.
func (c *Catalog) Titles() []string {
	out := make([]string, len(c.movies))
	for i := range c.movies {
		out[i] = c.movies[i].Title
	}
	return out
}
