// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package config loads Cinematch configuration with koanf.

# Configuration Sources

Sources are layered, later ones overriding earlier ones:

 1. Built-in defaults (struct provider)
 2. A YAML file: the -config flag, else $CINEMATCH_CONFIG, else the first of
    cinematch.yaml, cinematch.yml, /etc/cinematch/config.yaml and
    /etc/cinematch/config.yml that exists
 3. Environment variables (a .env file is loaded into the environment by
    the CLI before this package runs)

# File Layout

	catalog:
	  path: movies.json
	recommend:
	  default_k: 3
	  suggestion_limit: 5
	  suggestion_cutoff: 0.4
	  explain_terms: 5
	  weights:
	    summary: 1
	    genres: 2
	    director: 2
	    cast: 2
	logging:
	  level: warn
	  format: console
	  caller: false
	  no_color: false

# Environment Variables

  - CINEMATCH_CATALOG: catalog file (default: built-in)
  - RECOMMEND_DEFAULT_K: results per query (default: 3)
  - RECOMMEND_SUGGESTION_LIMIT: suggestions for unknown titles (default: 5)
  - RECOMMEND_SUGGESTION_CUTOFF: minimum suggestion ratio (default: 0.4)
  - RECOMMEND_EXPLAIN_TERMS: shared terms per result (default: 5)
  - RECOMMEND_WEIGHT_SUMMARY, RECOMMEND_WEIGHT_GENRES,
    RECOMMEND_WEIGHT_DIRECTOR, RECOMMEND_WEIGHT_CAST: field weights
    (default: 1, 2, 2, 2)
  - LOG_LEVEL: trace, debug, info, warn, error (default: warn)
  - LOG_FORMAT: console or json (default: console)
  - LOG_CALLER: include caller file:line (default: false)
  - NO_COLOR: disable colored console logs when set

Empty variables are ignored.

# Validation

Load rejects out-of-range values (negative weights, cutoff outside [0, 1],
unknown log levels) and a configuration whose weights are all zero.
*/
package config
