// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"time"

	"github.com/olegiv/portfolio-go/internal/model"
	"github.com/olegiv/portfolio-go/internal/store"
	"github.com/olegiv/portfolio-go/internal/util"
)

// CreateProject inserts a project and returns its id.
func (s *ContentService) CreateProject(ctx context.Context, in model.ProjectInput) (string, bool) {
	return s.create(ctx, TableProjects, in.Validate, func(id string, now time.Time) error {
		p := in.Project()
		return s.queries.CreateProject(ctx, store.CreateProjectParams{
			ID:              id,
			Image:           p.Image,
			CardTitle:       p.CardTitle,
			CardDescription: p.CardDescription,
			Tag:             p.Tag,
			GithubLink:      p.GithubLink,
			WebsiteLink:     util.NullStringFromPtr(p.WebsiteLink),
			CreatedAt:       p.CreatedAt,
			UpdatedAt:       util.NullTimeFromPtr(p.UpdatedAt),
			CreationTime:    now,
		})
	})
}

// ListProjects returns every project, newest first.
func (s *ContentService) ListProjects(ctx context.Context) ([]model.Project, bool) {
	return list(ctx, s, TableProjects, s.queries.ListProjects, projectFromStore)
}

// GetProjectByID returns the project with the given id, if any.
func (s *ContentService) GetProjectByID(ctx context.Context, id string) (model.Project, bool) {
	return get(ctx, s, TableProjects, id, s.queries.GetProjectByID, projectFromStore)
}

func projectFromStore(p store.Project) model.Project {
	return model.Project{
		ID:              p.ID,
		CreationTime:    p.CreationTime,
		Image:           p.Image,
		CardTitle:       p.CardTitle,
		CardDescription: p.CardDescription,
		Tag:             p.Tag,
		GithubLink:      p.GithubLink,
		WebsiteLink:     util.PtrFromNullString(p.WebsiteLink),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       util.PtrFromNullTime(p.UpdatedAt),
	}
}
