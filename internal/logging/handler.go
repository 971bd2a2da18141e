// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging provides a slog handler that persists diagnostics.
// Records at WARN and above are written to the diagnostics table in addition
// to the wrapped handler, so failures swallowed by the access functions still
// leave a durable trace.
package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/olegiv/portfolio-go/internal/model"
	"github.com/olegiv/portfolio-go/internal/store"
)

// DiagnosticHandler is a slog.Handler that wraps another handler and also
// writes records at or above its level to the diagnostics table.
type DiagnosticHandler struct {
	inner   slog.Handler
	queries *store.Queries
	level   slog.Level  // Minimum level persisted (default: WARN)
	attrs   []slog.Attr // Attributes added through WithAttrs, keys already qualified
	prefix  string      // Open groups, joined with "."
}

// NewDiagnosticHandler creates a DiagnosticHandler persisting WARN and above.
func NewDiagnosticHandler(inner slog.Handler, db store.DBTX) *DiagnosticHandler {
	return NewDiagnosticHandlerWithLevel(inner, db, slog.LevelWarn)
}

// NewDiagnosticHandlerWithLevel creates a DiagnosticHandler with a custom minimum level.
func NewDiagnosticHandlerWithLevel(inner slog.Handler, db store.DBTX, level slog.Level) *DiagnosticHandler {
	return &DiagnosticHandler{
		inner:   inner,
		queries: store.New(db),
		level:   level,
	}
}

// Enabled implements slog.Handler.
func (h *DiagnosticHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level) || level >= h.level
}

// Handle implements slog.Handler.
func (h *DiagnosticHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.inner.Enabled(ctx, r.Level) {
		if err := h.inner.Handle(ctx, r); err != nil {
			return err
		}
	}

	if r.Level >= h.level {
		h.persist(r)
	}

	return nil
}

// WithAttrs implements slog.Handler.
func (h *DiagnosticHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	for _, a := range attrs {
		merged = append(merged, qualify(h.prefix, a))
	}

	return &DiagnosticHandler{
		inner:   h.inner.WithAttrs(attrs),
		queries: h.queries,
		level:   h.level,
		attrs:   merged,
		prefix:  h.prefix,
	}
}

// WithGroup implements slog.Handler.
func (h *DiagnosticHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &DiagnosticHandler{
		inner:   h.inner.WithGroup(name),
		queries: h.queries,
		level:   h.level,
		attrs:   h.attrs,
		prefix:  h.prefix + name + ".",
	}
}

// persist writes r to the diagnostics table with a background context, since
// the logging request may already be cancelled. Write errors are dropped.
func (h *DiagnosticHandler) persist(r slog.Record) {
	attrs := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, qualify(h.prefix, a))
		return true
	})

	_ = h.queries.CreateDiagnostic(context.Background(), store.CreateDiagnosticParams{
		Level:     levelName(r.Level),
		Category:  category(r.Message, attrs),
		Message:   r.Message,
		Metadata:  metadata(attrs),
		CreatedAt: r.Time.UTC(),
	})
}

// qualify prefixes the key of a with the open groups.
func qualify(prefix string, a slog.Attr) slog.Attr {
	if prefix == "" {
		return a
	}
	return slog.Attr{Key: prefix + a.Key, Value: a.Value}
}

func levelName(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return model.DiagnosticLevelError
	case level >= slog.LevelWarn:
		return model.DiagnosticLevelWarning
	default:
		return model.DiagnosticLevelInfo
	}
}

// category returns the last "category" attribute, or infers one from the message.
func category(msg string, attrs []slog.Attr) string {
	var cat string
	for _, a := range attrs {
		if a.Key == "category" {
			cat = a.Value.String()
		}
	}
	if cat != "" {
		return cat
	}

	msg = strings.ToLower(msg)
	switch {
	case strings.Contains(msg, "invalid") || strings.Contains(msg, "validation"):
		return model.DiagnosticCategoryValidation
	case strings.Contains(msg, "database") || strings.Contains(msg, "record") || strings.Contains(msg, "store"):
		return model.DiagnosticCategoryStore
	case strings.Contains(msg, "request") || strings.Contains(msg, "rate limit") || strings.Contains(msg, "server"):
		return model.DiagnosticCategoryHTTP
	default:
		return model.DiagnosticCategorySystem
	}
}

// metadata encodes the attributes, except category, as a JSON object.
// Later attributes win over earlier ones with the same key.
func metadata(attrs []slog.Attr) string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		if a.Key != "category" {
			m[a.Key] = a.Value.String()
		}
	}
	if len(m) == 0 {
		return "{}"
	}

	data, err := json.Marshal(m)
	if err != nil {
		return "{}"
	}
	return string(data)
}
