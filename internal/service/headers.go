// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"time"

	"github.com/olegiv/portfolio-go/internal/model"
	"github.com/olegiv/portfolio-go/internal/store"
)

// CreateHeader inserts a header and returns its id.
// ok is false when the input is invalid or the store rejected the insert.
func (s *ContentService) CreateHeader(ctx context.Context, in model.HeaderInput) (string, bool) {
	return s.create(ctx, TableHeaders, in.Validate, func(id string, now time.Time) error {
		h := in.Header()
		return s.queries.CreateHeader(ctx, store.CreateHeaderParams{
			ID:           id,
			Name:         h.Name,
			Description:  h.Description,
			CreationTime: now,
		})
	})
}

// ListHeaders returns every header, newest first.
func (s *ContentService) ListHeaders(ctx context.Context) ([]model.Header, bool) {
	return list(ctx, s, TableHeaders, s.queries.ListHeaders, headerFromStore)
}

// GetHeaderByID returns the header with the given id, if any.
func (s *ContentService) GetHeaderByID(ctx context.Context, id string) (model.Header, bool) {
	return get(ctx, s, TableHeaders, id, s.queries.GetHeaderByID, headerFromStore)
}

func headerFromStore(h store.Header) model.Header {
	return model.Header{
		ID:           h.ID,
		CreationTime: h.CreationTime,
		Name:         h.Name,
		Description:  h.Description,
	}
}
