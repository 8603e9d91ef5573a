// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths searched for a config file, in order.
// The first file found is used.
var DefaultConfigPaths = []string{
	"cinematch.yaml",
	"cinematch.yml",
	"/etc/cinematch/config.yaml",
	"/etc/cinematch/config.yml",
}

// ConfigPathEnvVar overrides the config file search.
const ConfigPathEnvVar = "CINEMATCH_CONFIG"

// ErrConfigNotFound is returned when an explicitly requested config file
// does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// defaultConfig returns the built-in defaults. They are loaded first and
// overridden by the config file and then the environment.
func defaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path: "", // built-in catalog
		},
		Recommend: RecommendConfig{
			DefaultK:         3,
			SuggestionLimit:  5,
			SuggestionCutoff: 0.4,
			ExplainTerms:     5,
			Weights: WeightsConfig{
				Summary:  1,
				Genres:   2,
				Director: 2,
				Cast:     2,
			},
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load builds the configuration from defaults, a YAML file and the
// environment, in that order of precedence (last wins).
//
// A non-empty path must exist. An empty path searches $CINEMATCH_CONFIG
// and then DefaultConfigPaths; finding nothing is not an error.
func Load(path string) (*Config, error) {
	k, err := load(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Source reports which config file Load would read for path, or "" when
// only defaults and the environment apply.
func Source(path string) string {
	if path != "" {
		return path
	}
	return findConfigFile()
}

func load(path string) (*koanf.Koanf, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
	} else {
		path = findConfigFile()
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	return k, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envMappings maps lowercased environment variable names to config keys.
// Variables not listed are ignored.
var envMappings = map[string]string{
	"cinematch_catalog": "catalog.path",

	"recommend_default_k":         "recommend.default_k",
	"recommend_suggestion_limit":  "recommend.suggestion_limit",
	"recommend_suggestion_cutoff": "recommend.suggestion_cutoff",
	"recommend_explain_terms":     "recommend.explain_terms",
	"recommend_weight_summary":    "recommend.weights.summary",
	"recommend_weight_genres":     "recommend.weights.genres",
	"recommend_weight_director":   "recommend.weights.director",
	"recommend_weight_cast":       "recommend.weights.cast",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
	"no_color":   "logging.no_color",
}

// envTransformFunc maps an environment variable to its config key. Unknown
// or empty variables are dropped.
func envTransformFunc(key, value string) (string, interface{}) {
	mapped, ok := envMappings[strings.ToLower(key)]
	if !ok || value == "" {
		return "", nil
	}

	// NO_COLOR is set-means-true; its value carries no meaning.
	if mapped == "logging.no_color" {
		return mapped, "true"
	}

	return mapped, strings.TrimSpace(value)
}
