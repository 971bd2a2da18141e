// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"net/http"

	"github.com/olegiv/portfolio-go/internal/model"
)

// WorkExperienceResponse adds the parsed bullet items to a work experience.
type WorkExperienceResponse struct {
	model.WorkExperience
	Bullets []string `json:"bullets"`
}

func workExperienceToResponse(we model.WorkExperience) WorkExperienceResponse {
	return WorkExperienceResponse{
		WorkExperience: we,
		Bullets:        we.Bullets(),
	}
}

// ListWorkExperiences handles GET /api/v1/work-experiences
func (h *Handler) ListWorkExperiences(w http.ResponseWriter, r *http.Request) {
	listRecords(w, r, "work experience", func(ctx context.Context) ([]WorkExperienceResponse, bool) {
		records, ok := h.content.ListWorkExperiences(ctx)
		if !ok {
			return nil, false
		}
		resp := make([]WorkExperienceResponse, len(records))
		for i, we := range records {
			resp[i] = workExperienceToResponse(we)
		}
		return resp, true
	})
}

// GetWorkExperience handles GET /api/v1/work-experiences/{id}
func (h *Handler) GetWorkExperience(w http.ResponseWriter, r *http.Request) {
	getRecord(w, r, "work experience", func(ctx context.Context, id string) (WorkExperienceResponse, bool) {
		we, ok := h.content.GetWorkExperienceByID(ctx, id)
		if !ok {
			return WorkExperienceResponse{}, false
		}
		return workExperienceToResponse(we), true
	})
}

// CreateWorkExperience handles POST /api/v1/work-experiences
func (h *Handler) CreateWorkExperience(w http.ResponseWriter, r *http.Request) {
	createRecord(w, r, "work experience", h.content.CreateWorkExperience)
}
