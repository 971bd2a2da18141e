// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

const createDiagnostic = `-- name: CreateDiagnostic :exec
INSERT INTO diagnostics (level, category, message, metadata, created_at)
VALUES (?, ?, ?, ?, ?)
`

type CreateDiagnosticParams struct {
	Level     string    `json:"level"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	Metadata  string    `json:"metadata"`
	CreatedAt time.Time `json:"created_at"`
}

func (q *Queries) CreateDiagnostic(ctx context.Context, arg CreateDiagnosticParams) error {
	_, err := q.db.ExecContext(ctx, createDiagnostic,
		arg.Level,
		arg.Category,
		arg.Message,
		arg.Metadata,
		arg.CreatedAt,
	)
	return err
}

const listRecentDiagnostics = `-- name: ListRecentDiagnostics :many
SELECT id, level, category, message, metadata, created_at
FROM diagnostics ORDER BY id DESC LIMIT ?
`

func (q *Queries) ListRecentDiagnostics(ctx context.Context, limit int64) ([]Diagnostic, error) {
	rows, err := q.db.QueryContext(ctx, listRecentDiagnostics, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Diagnostic{}
	for rows.Next() {
		var i Diagnostic
		if err := rows.Scan(
			&i.ID,
			&i.Level,
			&i.Category,
			&i.Message,
			&i.Metadata,
			&i.CreatedAt,
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
