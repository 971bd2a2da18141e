// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import "net/http"

// ListIntroductions handles GET /api/v1/introductions
func (h *Handler) ListIntroductions(w http.ResponseWriter, r *http.Request) {
	listRecords(w, r, "introduction", h.content.ListIntroductions)
}

// GetIntroduction handles GET /api/v1/introductions/{id}
func (h *Handler) GetIntroduction(w http.ResponseWriter, r *http.Request) {
	getRecord(w, r, "introduction", h.content.GetIntroductionByID)
}

// CreateIntroduction handles POST /api/v1/introductions
func (h *Handler) CreateIntroduction(w http.ResponseWriter, r *http.Request) {
	createRecord(w, r, "introduction", h.content.CreateIntroduction)
}
