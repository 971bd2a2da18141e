// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

const createIntroduction = `-- name: CreateIntroduction :exec
INSERT INTO introductions (id, header, description, title, creation_time)
VALUES (?, ?, ?, ?, ?)
`

type CreateIntroductionParams struct {
	ID           string    `json:"id"`
	Header       string    `json:"header"`
	Description  string    `json:"description"`
	Title        string    `json:"title"`
	CreationTime time.Time `json:"creation_time"`
}

func (q *Queries) CreateIntroduction(ctx context.Context, arg CreateIntroductionParams) error {
	_, err := q.db.ExecContext(ctx, createIntroduction,
		arg.ID,
		arg.Header,
		arg.Description,
		arg.Title,
		arg.CreationTime,
	)
	return err
}

const getIntroductionByID = `-- name: GetIntroductionByID :one
SELECT id, header, description, title, creation_time FROM introductions WHERE id = ?
`

func (q *Queries) GetIntroductionByID(ctx context.Context, id string) (Introduction, error) {
	row := q.db.QueryRowContext(ctx, getIntroductionByID, id)
	var i Introduction
	err := row.Scan(
		&i.ID,
		&i.Header,
		&i.Description,
		&i.Title,
		&i.CreationTime,
	)
	return i, err
}

const listIntroductions = `-- name: ListIntroductions :many
SELECT id, header, description, title, creation_time FROM introductions ORDER BY seq DESC
`

func (q *Queries) ListIntroductions(ctx context.Context) ([]Introduction, error) {
	rows, err := q.db.QueryContext(ctx, listIntroductions)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Introduction{}
	for rows.Next() {
		var i Introduction
		if err := rows.Scan(
			&i.ID,
			&i.Header,
			&i.Description,
			&i.Title,
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

const countIntroductions = `-- name: CountIntroductions :one
SELECT COUNT(*) FROM introductions
`

func (q *Queries) CountIntroductions(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countIntroductions)
	var count int64
	err := row.Scan(&count)
	return count, err
}
