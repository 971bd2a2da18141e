// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import "net/http"

// ListProjectDetails handles GET /api/v1/project-details
func (h *Handler) ListProjectDetails(w http.ResponseWriter, r *http.Request) {
	listRecords(w, r, "project detail", h.content.ListProjectDetails)
}

// GetProjectDetail handles GET /api/v1/project-details/{id}
func (h *Handler) GetProjectDetail(w http.ResponseWriter, r *http.Request) {
	getRecord(w, r, "project detail", h.content.GetProjectDetailByID)
}

// CreateProjectDetail handles POST /api/v1/project-details
func (h *Handler) CreateProjectDetail(w http.ResponseWriter, r *http.Request) {
	createRecord(w, r, "project detail", h.content.CreateProjectDetail)
}
