// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const createProject = `-- name: CreateProject :exec
INSERT INTO projects (
    id, image, card_title, card_description, tag, github_link, website_link, created_at, updated_at, creation_time
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type CreateProjectParams struct {
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

func (q *Queries) CreateProject(ctx context.Context, arg CreateProjectParams) error {
	_, err := q.db.ExecContext(ctx, createProject,
		arg.ID,
		arg.Image,
		arg.CardTitle,
		arg.CardDescription,
		arg.Tag,
		arg.GithubLink,
		arg.WebsiteLink,
		arg.CreatedAt,
		arg.UpdatedAt,
		arg.CreationTime,
	)
	return err
}

const getProjectByID = `-- name: GetProjectByID :one
SELECT id, image, card_title, card_description, tag, github_link, website_link, created_at, updated_at, creation_time
FROM projects WHERE id = ?
`

func (q *Queries) GetProjectByID(ctx context.Context, id string) (Project, error) {
	row := q.db.QueryRowContext(ctx, getProjectByID, id)
	var i Project
	err := row.Scan(
		&i.ID,
		&i.Image,
		&i.CardTitle,
		&i.CardDescription,
		&i.Tag,
		&i.GithubLink,
		&i.WebsiteLink,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.CreationTime,
	)
	return i, err
}

const listProjects = `-- name: ListProjects :many
SELECT id, image, card_title, card_description, tag, github_link, website_link, created_at, updated_at, creation_time
FROM projects ORDER BY seq DESC
`

func (q *Queries) ListProjects(ctx context.Context) ([]Project, error) {
	rows, err := q.db.QueryContext(ctx, listProjects)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Project{}
	for rows.Next() {
		var i Project
		if err := rows.Scan(
			&i.ID,
			&i.Image,
			&i.CardTitle,
			&i.CardDescription,
			&i.Tag,
			&i.GithubLink,
			&i.WebsiteLink,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.CreationTime,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countProjects = `-- name: CountProjects :one
SELECT COUNT(*) FROM projects
`

func (q *Queries) CountProjects(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countProjects)
	var count int64
	err := row.Scan(&count)
	return count, err
}
