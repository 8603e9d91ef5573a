// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const queryIDKey contextKey = "query_id"

// GenerateQueryID returns a new query ID (a full UUID).
func GenerateQueryID() string {
	return uuid.New().String()
}

// ContextWithQueryID returns a copy of ctx carrying the given query ID.
func ContextWithQueryID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, queryIDKey, id)
}

// ContextWithNewQueryID returns a copy of ctx carrying a fresh query ID.
func ContextWithNewQueryID(ctx context.Context) context.Context {
	return ContextWithQueryID(ctx, GenerateQueryID())
}

// QueryIDFromContext returns the query ID stored in ctx, or "".
func QueryIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(queryIDKey).(string); ok {
		return id
	}
	return ""
}

// Ctx returns the global logger with the query_id field added when ctx
// carries one.
//
//	logging.Ctx(ctx).Info().Str("title", title).Msg("Recommending")
func Ctx(ctx context.Context) *zerolog.Logger {
	l := Logger()
	if id := QueryIDFromContext(ctx); id != "" {
		l = l.With().Str("query_id", id).Logger()
	}
	return &l
}
