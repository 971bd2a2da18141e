// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service provides the access functions of the portfolio content
// tables. Every function performs at most one store operation and reports
// failure as a value: creates return ok=false, lookups return absent. Errors
// never escape to the caller; they are logged instead.
package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/olegiv/portfolio-go/internal/model"
	"github.com/olegiv/portfolio-go/internal/store"
)

// Table names used in diagnostics.
const (
	TableHeaders         = "headers"
	TableIntroductions   = "introductions"
	TableProjects        = "projects"
	TableProjectDetails  = "project_details"
	TableWorkExperiences = "work_experiences"
)

// ContentService exposes create and read operations for every content table.
type ContentService struct {
	queries *store.Queries
	logger  *slog.Logger
	newID   func() string
	now     func() time.Time
}

// NewContentService creates a ContentService backed by db.
func NewContentService(db store.DBTX, logger *slog.Logger) *ContentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentService{
		queries: store.New(db),
		logger:  logger,
		newID:   uuid.NewString,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// create validates the input and then performs the insert. The id is
// assigned here, before the insert, so the store never sees a row without one.
func (s *ContentService) create(ctx context.Context, table string, validate func() error, insert func(id string, now time.Time) error) (string, bool) {
	if err := validate(); err != nil {
		s.logger.WarnContext(ctx, "rejected invalid record",
			"category", model.DiagnosticCategoryValidation,
			"table", table,
			"error", err,
		)
		return "", false
	}

	id := s.newID()
	if err := insert(id, s.now()); err != nil {
		s.logger.ErrorContext(ctx, "failed to insert record",
			"category", model.DiagnosticCategoryStore,
			"table", table,
			"error", err,
		)
		return "", false
	}

	return id, true
}

// list runs a full newest-first scan and converts every row.
func list[S, M any](ctx context.Context, s *ContentService, table string, scan func(context.Context) ([]S, error), convert func(S) M) ([]M, bool) {
	rows, err := scan(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list records",
			"category", model.DiagnosticCategoryStore,
			"table", table,
			"error", err,
		)
		return nil, false
	}

	items := make([]M, 0, len(rows))
	for _, row := range rows {
		items = append(items, convert(row))
	}
	return items, true
}

// get performs a point lookup. Ids that are not well formed cannot exist
// and are reported absent without querying.
func get[S, M any](ctx context.Context, s *ContentService, table, id string, fetch func(context.Context, string) (S, error), convert func(S) M) (M, bool) {
	var zero M

	if _, err := uuid.Parse(id); err != nil {
		return zero, false
	}

	row, err := fetch(ctx, id)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.ErrorContext(ctx, "failed to get record",
				"category", model.DiagnosticCategoryStore,
				"table", table,
				"id", id,
				"error", err,
			)
		}
		return zero, false
	}

	return convert(row), true
}
