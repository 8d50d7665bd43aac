// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	correlationIDKey contextKey = "correlation_id"
	requestIDKey     contextKey = "request_id"
	listenerIDKey    contextKey = "listener_id"
	loggerKey        contextKey = "logger"
)

// GenerateCorrelationID returns an 8-character id that is short enough to
// grep for across the logs of one request chain.
func GenerateCorrelationID() string {
	return uuid.NewString()[:8]
}

func GenerateRequestID() string {
	return uuid.NewString()
}

func stringValue(ctx context.Context, key contextKey) string {
	id, _ := ctx.Value(key).(string)
	return id
}

func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

func CorrelationIDFromContext(ctx context.Context) string {
	return stringValue(ctx, correlationIDKey)
}

func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns "" when the request passed no id middleware.
func RequestIDFromContext(ctx context.Context) string {
	return stringValue(ctx, requestIDKey)
}

// ContextWithListenerID tags the context with the listener a request acts for.
func ContextWithListenerID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, listenerIDKey, id)
}

func ListenerIDFromContext(ctx context.Context) string {
	return stringValue(ctx, listenerIDKey)
}

//nolint:gocritic // zerolog.Logger is designed to be passed by value
func ContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext falls back to the global logger.
func LoggerFromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
		return logger
	}
	return Logger()
}

// contextFields are copied onto every Ctx logger when present.
var contextFields = []contextKey{correlationIDKey, requestIDKey, listenerIDKey}

// Ctx returns the context logger with correlation_id, request_id and
// listener_id attached.
//
//	logging.Ctx(ctx).Info().Int("tracks", n).Msg("Search resolved")
func Ctx(ctx context.Context) *zerolog.Logger {
	logger := LoggerFromContext(ctx)
	fields := logger.With()
	for _, key := range contextFields {
		if v := stringValue(ctx, key); v != "" {
			fields = fields.Str(string(key), v)
		}
	}
	l := fields.Logger()
	return &l
}

// WithComponent creates a child of the global logger with a component field.
//
//	logger := logging.WithComponent("sequencer")
func WithComponent(component string) zerolog.Logger {
	return Component(Logger(), component)
}

// Component derives a component logger from an injected base logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func Component(base zerolog.Logger, component string) zerolog.Logger {
	return base.With().Str("component", component).Logger()
}
