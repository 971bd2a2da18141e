// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import "net/http"

// ListHeaders handles GET /api/v1/headers
func (h *Handler) ListHeaders(w http.ResponseWriter, r *http.Request) {
	listRecords(w, r, "header", h.content.ListHeaders)
}

// GetHeader handles GET /api/v1/headers/{id}
func (h *Handler) GetHeader(w http.ResponseWriter, r *http.Request) {
	getRecord(w, r, "header", h.content.GetHeaderByID)
}

// CreateHeader handles POST /api/v1/headers
func (h *Handler) CreateHeader(w http.ResponseWriter, r *http.Request) {
	createRecord(w, r, "header", h.content.CreateHeader)
}
