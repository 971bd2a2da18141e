// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const createWorkExperience = `-- name: CreateWorkExperience :exec
INSERT INTO work_experiences (
    id, icon, workplace, work_title, description, start_date, end_date, is_current_job, creation_time
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type CreateWorkExperienceParams struct {
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

func (q *Queries) CreateWorkExperience(ctx context.Context, arg CreateWorkExperienceParams) error {
	_, err := q.db.ExecContext(ctx, createWorkExperience,
		arg.ID,
		arg.Icon,
		arg.Workplace,
		arg.WorkTitle,
		arg.Description,
		arg.StartDate,
		arg.EndDate,
		arg.IsCurrentJob,
		arg.CreationTime,
	)
	return err
}

const getWorkExperienceByID = `-- name: GetWorkExperienceByID :one
SELECT id, icon, workplace, work_title, description, start_date, end_date, is_current_job, creation_time
FROM work_experiences WHERE id = ?
`

func (q *Queries) GetWorkExperienceByID(ctx context.Context, id string) (WorkExperience, error) {
	row := q.db.QueryRowContext(ctx, getWorkExperienceByID, id)
	var i WorkExperience
	err := row.Scan(
		&i.ID,
		&i.Icon,
		&i.Workplace,
		&i.WorkTitle,
		&i.Description,
		&i.StartDate,
		&i.EndDate,
		&i.IsCurrentJob,
		&i.CreationTime,
	)
	return i, err
}

const listWorkExperiences = `-- name: ListWorkExperiences :many
SELECT id, icon, workplace, work_title, description, start_date, end_date, is_current_job, creation_time
FROM work_experiences ORDER BY seq DESC
`

func (q *Queries) ListWorkExperiences(ctx context.Context) ([]WorkExperience, error) {
	rows, err := q.db.QueryContext(ctx, listWorkExperiences)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []WorkExperience{}
	for rows.Next() {
		var i WorkExperience
		if err := rows.Scan(
			&i.ID,
			&i.Icon,
			&i.Workplace,
			&i.WorkTitle,
			&i.Description,
			&i.StartDate,
			&i.EndDate,
			&i.IsCurrentJob,
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
