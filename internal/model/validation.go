// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the content records of the portfolio and the input
// shapes accepted when creating them.
package model

import (
	"sort"
	"strings"
	"time"
)

// ValidationError reports input fields that do not match a table's shape.
// Fields maps the JSON field name to a human-readable message.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// fieldChecker collects per-field problems while an input is checked.
type fieldChecker struct {
	fields map[string]string
}

func newFieldChecker() *fieldChecker {
	return &fieldChecker{fields: make(map[string]string)}
}

func (c *fieldChecker) requireString(name string, v *string) {
	if v == nil {
		c.fields[name] = "is required"
	}
}

func (c *fieldChecker) requireTime(name string, v *time.Time) {
	if v == nil {
		c.fields[name] = "is required"
		return
	}
	if v.IsZero() {
		c.fields[name] = "must be a valid timestamp"
	}
}

func (c *fieldChecker) requireBool(name string, v *bool) {
	if v == nil {
		c.fields[name] = "is required"
	}
}

func (c *fieldChecker) optionalTime(name string, v *time.Time) {
	if v != nil && v.IsZero() {
		c.fields[name] = "must be a valid timestamp"
	}
}

// err returns nil when no field failed.
func (c *fieldChecker) err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: c.fields}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// utc returns *p converted to UTC, or the zero time when p is nil.
// Stored timestamps are always UTC so every driver reads them back.
func utc(p *time.Time) time.Time {
	if p == nil {
		return time.Time{}
	}
	return p.UTC()
}

// utcPtr is utc for optional timestamps.
func utcPtr(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	t := p.UTC()
	return &t
}
