// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

const createHeader = `-- name: CreateHeader :exec
INSERT INTO headers (id, name, description, creation_time)
VALUES (?, ?, ?, ?)
`

type CreateHeaderParams struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CreationTime time.Time `json:"creation_time"`
}

func (q *Queries) CreateHeader(ctx context.Context, arg CreateHeaderParams) error {
	_, err := q.db.ExecContext(ctx, createHeader,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.CreationTime,
	)
	return err
}

const getHeaderByID = `-- name: GetHeaderByID :one
SELECT id, name, description, creation_time FROM headers WHERE id = ?
`

func (q *Queries) GetHeaderByID(ctx context.Context, id string) (Header, error) {
	row := q.db.QueryRowContext(ctx, getHeaderByID, id)
	var i Header
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.CreationTime,
	)
	return i, err
}

const listHeaders = `-- name: ListHeaders :many
SELECT id, name, description, creation_time FROM headers ORDER BY seq DESC
`

func (q *Queries) ListHeaders(ctx context.Context) ([]Header, error) {
	rows, err := q.db.QueryContext(ctx, listHeaders)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Header{}
	for rows.Next() {
		var i Header
		if err := rows.Scan(
			&i.ID,
			&i.Name,
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

const countHeaders = `-- name: CountHeaders :one
SELECT COUNT(*) FROM headers
`

func (q *Queries) CountHeaders(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countHeaders)
	var count int64
	err := row.Scan(&count)
	return count, err
}
