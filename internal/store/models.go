// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"database/sql"
	"time"
)

type Header struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CreationTime time.Time `json:"creation_time"`
}

type Introduction struct {
	ID           string    `json:"id"`
	Header       string    `json:"header"`
	Description  string    `json:"description"`
	Title        string    `json:"title"`
	CreationTime time.Time `json:"creation_time"`
}

type Project struct {
	ID              string         `json:"id"`
	Image           string         `json:"image"`
	CardTitle       string         `json:"card_title"`
	CardDescription string         `json:"card_description"`
	Tag             string         `json:"tag"`
	GithubLink      string         `json:"github_link"`
	WebsiteLink     sql.NullString `json:"website_link"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       sql.NullTime   `json:"updated_at"`
	CreationTime    time.Time      `json:"creation_time"`
}

type ProjectDetail struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Header       string    `json:"header"`
	Description  string    `json:"description"`
	CreationTime time.Time `json:"creation_time"`
}

type WorkExperience struct {
	ID           string       `json:"id"`
	Icon         string       `json:"icon"`
	Workplace    string       `json:"workplace"`
	WorkTitle    string       `json:"work_title"`
	Description  string       `json:"description"`
	StartDate    time.Time    `json:"start_date"`
	EndDate      sql.NullTime `json:"end_date"`
	IsCurrentJob bool         `json:"is_current_job"`
	CreationTime time.Time    `json:"creation_time"`
}

type Diagnostic struct {
	ID        int64     `json:"id"`
	Level     string    `json:"level"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	Metadata  string    `json:"metadata"`
	CreatedAt time.Time `json:"created_at"`
}
