// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format identifies a catalog file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

//go:embed data/movies.yaml
var builtinYAML []byte

var (
	builtinOnce sync.Once
	builtin     *Catalog
	builtinErr  error
)

// catalogFile is the object form of a catalog file. A bare list of movies
// is accepted as well.
type catalogFile struct {
	Movies []Movie `json:"movies" yaml:"movies"`
}

// Builtin returns the catalog compiled into the binary. It is parsed once.
func Builtin() (*Catalog, error) {
	builtinOnce.Do(func() {
		builtin, builtinErr = Parse(builtinYAML, FormatYAML)
		if builtinErr != nil {
			builtinErr = fmt.Errorf("built-in catalog: %w", builtinErr)
		}
	})
	return builtin, builtinErr
}

// FormatFromPath infers the catalog format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (want .json, .yaml or .yml)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads a catalog file. The format is chosen by extension.
func Load(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is operator-provided
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	c, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes catalog data holding either a list of movies or an object
// with a "movies" list.
func Parse(data []byte, format Format) (*Catalog, error) {
	var (
		movies []Movie
		err    error
	)

	switch format {
	case FormatJSON:
		movies, err = decodeJSON(data)
	case FormatYAML:
		movies, err = decodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	return New(movies)
}

func decodeJSON(data []byte) ([]Movie, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmptyCatalog
	}

	if trimmed[0] == '[' {
		var movies []Movie
		if err := json.Unmarshal(trimmed, &movies); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return movies, nil
	}

	var f catalogFile
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return f.Movies, nil
}

func decodeYAML(data []byte) ([]Movie, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmptyCatalog
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var movies []Movie
		if err := root.Decode(&movies); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return movies, nil
	case yaml.MappingNode:
		var f catalogFile
		if err := root.Decode(&f); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return f.Movies, nil
	default:
		return nil, fmt.Errorf("decode yaml: line %d: expected a list or a mapping", root.Line)
	}
}
