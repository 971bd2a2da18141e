// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"time"

	"github.com/olegiv/portfolio-go/internal/model"
	"github.com/olegiv/portfolio-go/internal/store"
)

// CreateIntroduction inserts an introduction and returns its id.
func (s *ContentService) CreateIntroduction(ctx context.Context, in model.IntroductionInput) (string, bool) {
	return s.create(ctx, TableIntroductions, in.Validate, func(id string, now time.Time) error {
		intro := in.Introduction()
		return s.queries.CreateIntroduction(ctx, store.CreateIntroductionParams{
			ID:           id,
			Header:       intro.Header,
			Description:  intro.Description,
			Title:        intro.Title,
			CreationTime: now,
		})
	})
}

// ListIntroductions returns every introduction, newest first.
func (s *ContentService) ListIntroductions(ctx context.Context) ([]model.Introduction, bool) {
	return list(ctx, s, TableIntroductions, s.queries.ListIntroductions, introductionFromStore)
}

// GetIntroductionByID returns the introduction with the given id, if any.
func (s *ContentService) GetIntroductionByID(ctx context.Context, id string) (model.Introduction, bool) {
	return get(ctx, s, TableIntroductions, id, s.queries.GetIntroductionByID, introductionFromStore)
}

func introductionFromStore(i store.Introduction) model.Introduction {
	return model.Introduction{
		ID:           i.ID,
		CreationTime: i.CreationTime,
		Header:       i.Header,
		Description:  i.Description,
		Title:        i.Title,
	}
}
