// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tomtom215/cinematch/internal/validation"
)

func sampleMovies() []Movie {
	return []Movie{
		{Title: "Alpha", Year: 2001, Genres: []string{"Drama"}, Director: "Ann", Cast: []string{"X", "Y"}, Summary: "First."},
		{Title: "Beta", Year: 2002, Genres: []string{"Comedy"}, Director: "Bob", Summary: "Second."},
		{Title: "Gamma", Year: 2003},
	}
}

func TestNew(t *testing.T) {
	c, err := New(sampleMovies())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
	if got := strings.Join(c.Titles(), ","); got != "Alpha,Beta,Gamma" {
		t.Errorf("Titles() = %s, want Alpha,Beta,Gamma", got)
	}
	if c.Index("Beta") != 1 || c.Index("beta") != -1 {
		t.Errorf("Index() = %d/%d, want 1/-1", c.Index("Beta"), c.Index("beta"))
	}
	if c.At(2).Title != "Gamma" {
		t.Errorf("At(2).Title = %q, want Gamma", c.At(2).Title)
	}

	m, ok := c.Get("Alpha")
	if !ok || m.Director != "Ann" {
		t.Errorf("Get(Alpha) = %+v, %v", m, ok)
	}
	if _, ok := c.Get("alpha"); ok {
		t.Error("Get() should be case-sensitive")
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name    string
		movies  []Movie
		wantErr error
		wantMsg string
	}{
		{
			name:    "empty",
			movies:  nil,
			wantErr: ErrEmptyCatalog,
		},
		{
			name:    "duplicate title",
			movies:  []Movie{{Title: "A"}, {Title: "B"}, {Title: "A"}},
			wantErr: ErrDuplicateTitle,
			wantMsg: `"A" at #1 and #3`,
		},
		{
			name:    "missing title",
			movies:  []Movie{{Title: "A"}, {Year: 2000}},
			wantMsg: "title is required",
		},
		{
			name:    "blank title",
			movies:  []Movie{{Title: " \t"}},
			wantMsg: "title must not be blank",
		},
		{
			name:    "negative year",
			movies:  []Movie{{Title: "A", Year: -1}},
			wantMsg: "year must be greater than or equal to 0",
		},
		{
			name:    "blank genre",
			movies:  []Movie{{Title: "A", Genres: []string{"Drama", ""}}},
			wantMsg: "genres[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.movies)
			if err == nil {
				t.Fatal("New() expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("New() error = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestNew_ValidationErrorType(t *testing.T) {
	_, err := New([]Movie{{Year: 1}})

	var verr *validation.Errors
	if !errors.As(err, &verr) {
		t.Fatalf("New() error = %T, want *validation.Errors in chain", err)
	}
	if !verr.Has("title", "required") {
		t.Errorf("validation errors = %v, want title/required", verr)
	}
}

func TestCatalog_Immutable(t *testing.T) {
	input := sampleMovies()
	c, err := New(input)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	input[0].Title = "Changed"
	input[0].Genres[0] = "Changed"

	m, _ := c.Get("Alpha")
	if m.Genres[0] != "Drama" {
		t.Errorf("catalog aliased input slice: genres = %v", m.Genres)
	}

	m.Cast[0] = "Changed"
	first := c.At(0)
	first.Genres[0] = "Changed"

	again, _ := c.Get("Alpha")
	if again.Cast[0] != "X" || again.Genres[0] != "Drama" {
		t.Errorf("catalog mutated through returned copies: %+v", again)
	}
}

func TestBuiltin(t *testing.T) {
	c, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin() error = %v", err)
	}
	if c.Len() != 8 {
		t.Fatalf("Builtin().Len() = %d, want 8", c.Len())
	}

	first := c.At(0)
	if first.Title != "Harry Potter y la piedra filosofal" || first.Year != 2001 {
		t.Errorf("At(0) = %s", first.Label())
	}
	if first.Director != "Chris Columbus" {
		t.Errorf("At(0).Director = %q", first.Director)
	}
	if got := strings.Join(first.Cast, ","); got != "Daniel Radcliffe,Emma Watson,Rupert Grint" {
		t.Errorf("At(0).Cast = %s", got)
	}

	last := c.At(7)
	if last.Title != "Harry Potter y las Reliquias de la Muerte - Parte 2" || last.Genres[2] != "Épico" {
		t.Errorf("At(7) = %+v", last)
	}

	again, _ := Builtin()
	if again != c {
		t.Error("Builtin() should parse the embedded data once")
	}
}

func TestMovie_Label(t *testing.T) {
	m := Movie{Title: "Harry Potter y la cámara secreta", Year: 2002}
	if got := m.Label(); got != "Harry Potter y la cámara secreta (2002)" {
		t.Errorf("Label() = %q", got)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"movies.json", FormatJSON, false},
		{"movies.JSON", FormatJSON, false},
		{"dir/movies.yaml", FormatYAML, false},
		{"movies.yml", FormatYAML, false},
		{"movies.csv", "", true},
		{"movies", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("FormatFromPath(%q) error = %v, want ErrUnsupportedFormat", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    []string
	}{
		{
			name:    "json list",
			file:    "list.json",
			content: `[{"title":"One","year":1990,"genres":["Drama"]},{"title":"Two","year":1991}]`,
			want:    []string{"One", "Two"},
		},
		{
			name:    "json object",
			file:    "obj.json",
			content: "  {\"movies\": [{\"title\": \"One\", \"cast\": [\"A\"]}]}\n",
			want:    []string{"One"},
		},
		{
			name:    "yaml list",
			file:    "list.yml",
			content: "# comment\n- title: One\n  year: 1990\n- title: Two\n",
			want:    []string{"One", "Two"},
		},
		{
			name:    "yaml object",
			file:    "obj.yaml",
			content: "movies:\n  - title: Uno\n    summary: Texto con acentos, él.\n",
			want:    []string{"Uno"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}

			c, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got := strings.Join(c.Titles(), ","); got != strings.Join(tt.want, ",") {
				t.Errorf("Titles() = %s, want %v", got, tt.want)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
		return p
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
		wantMsg string
	}{
		{name: "missing file", path: filepath.Join(dir, "nope.json"), wantErr: os.ErrNotExist},
		{name: "bad extension", path: write("movies.txt", "x"), wantErr: ErrUnsupportedFormat},
		{name: "empty json", path: write("empty.json", "  "), wantErr: ErrEmptyCatalog},
		{name: "empty yaml", path: write("empty.yaml", ""), wantErr: ErrEmptyCatalog},
		{name: "empty list", path: write("none.json", "[]"), wantErr: ErrEmptyCatalog},
		{name: "malformed json", path: write("bad.json", "{"), wantMsg: "decode json"},
		{name: "malformed yaml", path: write("bad.yaml", "movies: [\n"), wantMsg: "decode yaml"},
		{name: "scalar yaml", path: write("scalar.yaml", "hello\n"), wantMsg: "expected a list or a mapping"},
		{name: "duplicate", path: write("dup.yaml", "- title: A\n- title: A\n"), wantErr: ErrDuplicateTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Load() error = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestParse_UnknownFormat(t *testing.T) {
	if _, err := Parse([]byte("[]"), Format("toml")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Parse() error = %v, want ErrUnsupportedFormat", err)
	}
}
