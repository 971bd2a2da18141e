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

// CreateWorkExperience inserts a work experience and returns its id.
func (s *ContentService) CreateWorkExperience(ctx context.Context, in model.WorkExperienceInput) (string, bool) {
	return s.create(ctx, TableWorkExperiences, in.Validate, func(id string, now time.Time) error {
		w := in.WorkExperience()
		return s.queries.CreateWorkExperience(ctx, store.CreateWorkExperienceParams{
			ID:           id,
			Icon:         w.Icon,
			Workplace:    w.Workplace,
			WorkTitle:    w.WorkTitle,
			Description:  w.Description,
			StartDate:    w.StartDate,
			EndDate:      util.NullTimeFromPtr(w.EndDate),
			IsCurrentJob: w.IsCurrentJob,
			CreationTime: now,
		})
	})
}

// ListWorkExperiences returns every work experience, newest first.
func (s *ContentService) ListWorkExperiences(ctx context.Context) ([]model.WorkExperience, bool) {
	return list(ctx, s, TableWorkExperiences, s.queries.ListWorkExperiences, workExperienceFromStore)
}

// GetWorkExperienceByID returns the work experience with the given id, if any.
func (s *ContentService) GetWorkExperienceByID(ctx context.Context, id string) (model.WorkExperience, bool) {
	return get(ctx, s, TableWorkExperiences, id, s.queries.GetWorkExperienceByID, workExperienceFromStore)
}

func workExperienceFromStore(w store.WorkExperience) model.WorkExperience {
	return model.WorkExperience{
		ID:           w.ID,
		CreationTime: w.CreationTime,
		Icon:         w.Icon,
		Workplace:    w.Workplace,
		WorkTitle:    w.WorkTitle,
		Description:  w.Description,
		StartDate:    w.StartDate,
		EndDate:      util.PtrFromNullTime(w.EndDate),
		IsCurrentJob: w.IsCurrentJob,
	}
}
