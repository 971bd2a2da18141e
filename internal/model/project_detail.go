// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// ProjectDetail is a titled text section shown on a project page.
type ProjectDetail struct {
	ID           string    `json:"_id"`
	CreationTime time.Time `json:"_creationTime"`
	Title        string    `json:"title"`
	Header       string    `json:"header"`
	Description  string    `json:"description"`
}

// ProjectDetailInput is the body accepted when creating a project detail.
type ProjectDetailInput struct {
	Title       *string `json:"title"`
	Header      *string `json:"header"`
	Description *string `json:"description"`
}

// Validate checks that every required field is present.
func (in ProjectDetailInput) Validate() error {
	c := newFieldChecker()
	c.requireString("title", in.Title)
	c.requireString("header", in.Header)
	c.requireString("description", in.Description)
	return c.err()
}

// ProjectDetail returns the record described by the input, without identity.
func (in ProjectDetailInput) ProjectDetail() ProjectDetail {
	return ProjectDetail{
		Title:       deref(in.Title),
		Header:      deref(in.Header),
		Description: deref(in.Description),
	}
}
