// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"time"

	"github.com/olegiv/portfolio-go/internal/model"
	"github.com/olegiv/portfolio-go/internal/store"
)

// CreateProjectDetail inserts a project detail and returns its id.
func (s *ContentService) CreateProjectDetail(ctx context.Context, in model.ProjectDetailInput) (string, bool) {
	return s.create(ctx, TableProjectDetails, in.Validate, func(id string, now time.Time) error {
		d := in.ProjectDetail()
		return s.queries.CreateProjectDetail(ctx, store.CreateProjectDetailParams{
			ID:           id,
			Title:        d.Title,
			Header:       d.Header,
			Description:  d.Description,
			CreationTime: now,
		})
	})
}

// ListProjectDetails returns every project detail, newest first.
func (s *ContentService) ListProjectDetails(ctx context.Context) ([]model.ProjectDetail, bool) {
	return list(ctx, s, TableProjectDetails, s.queries.ListProjectDetails, projectDetailFromStore)
}

// GetProjectDetailByID returns the project detail with the given id, if any.
func (s *ContentService) GetProjectDetailByID(ctx context.Context, id string) (model.ProjectDetail, bool) {
	return get(ctx, s, TableProjectDetails, id, s.queries.GetProjectDetailByID, projectDetailFromStore)
}

func projectDetailFromStore(d store.ProjectDetail) model.ProjectDetail {
	return model.ProjectDetail{
		ID:           d.ID,
		CreationTime: d.CreationTime,
		Title:        d.Title,
		Header:       d.Header,
		Description:  d.Description,
	}
}
