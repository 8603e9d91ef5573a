// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package main is the entry point for the cinematch command.
//
// Cinematch recommends movies similar to a given title by comparing
// bag-of-words profiles built from each movie's summary, genres, director
// and cast. The default catalog is embedded in the binary.
//
// # Usage
//
//	cinematch                                      list the catalog
//	cinematch "Harry Potter y la piedra filosofal"  top 3 recommendations
//	cinematch "Harry Potter y la piedra filosofal" 5
//	cinematch -json "Harry Potter y la cámara secreta"
//	cinematch -catalog movies.yaml -interactive
//
// An unknown title prints the closest catalog titles and exits 0. An
// invalid k exits 2. Configuration and catalog errors exit 1.
//
// # Startup
//
//  1. .env: loaded into the environment when present (godotenv)
//  2. Configuration: defaults, YAML file, environment (koanf v2)
//  3. Logging: zerolog on stderr, warn level by default
//  4. Catalog: built-in or -catalog/CINEMATCH_CATALOG file
//  5. Recommender: profiles are built once for every movie
//
// # Flags
//
//	-config string     YAML config file
//	-catalog string    catalog file (.json, .yaml, .yml)
//	-json              JSON output
//	-interactive       terminal browser (bubbletea)
//	-metrics           Prometheus text dump on stderr at exit
//
// See package config for the environment variables.
package main
