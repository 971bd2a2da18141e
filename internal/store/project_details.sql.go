// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

const createProjectDetail = `-- name: CreateProjectDetail :exec
INSERT INTO project_details (
    id, title, header, description, creation_time
) VALUES (?, ?, ?, ?, ?)
`

type CreateProjectDetailParams struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Header       string    `json:"header"`
	Description  string    `json:"description"`
	CreationTime time.Time `json:"creation_time"`
}

func (q *Queries) CreateProjectDetail(ctx context.Context, arg CreateProjectDetailParams) error {
	_, err := q.db.ExecContext(ctx, createProjectDetail,
		arg.ID,
		arg.Title,
		arg.Header,
		arg.Description,
		arg.CreationTime,
	)
	return err
}

const getProjectDetailByID = `-- name: GetProjectDetailByID :one
SELECT id, title, header, description, creation_time
FROM project_details WHERE id = ?
`

func (q *Queries) GetProjectDetailByID(ctx context.Context, id string) (ProjectDetail, error) {
	row := q.db.QueryRowContext(ctx, getProjectDetailByID, id)
	var i ProjectDetail
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Header,
		&i.Description,
		&i.CreationTime,
	)
	return i, err
}

const listProjectDetails = `-- name: ListProjectDetails :many
SELECT id, title, header, description, creation_time
FROM project_details ORDER BY seq DESC
`

func (q *Queries) ListProjectDetails(ctx context.Context) ([]ProjectDetail, error) {
	rows, err := q.db.QueryContext(ctx, listProjectDetails)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ProjectDetail{}
	for rows.Next() {
		var i ProjectDetail
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Header,
			&i.Description,
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
