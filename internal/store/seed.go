// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Default content written by Seed into empty tables.
const (
	DefaultHeaderName         = "My Portfolio"
	DefaultHeaderDescription  = "Projects, experience and notes"
	DefaultIntroductionHeader = "Hello"
	DefaultIntroductionTitle  = "Welcome"
	DefaultIntroductionText   = "This site collects the things I have built and where I have worked."
)

// Seed creates initial content in the database.
// Does nothing if doSeed is false or if a header already exists.
func Seed(ctx context.Context, db *sql.DB, doSeed bool) error {
	if !doSeed {
		slog.Info("seeding disabled, skipping")
		return nil
	}

	queries := New(db)

	count, err := queries.CountHeaders(ctx)
	if err != nil {
		return fmt.Errorf("counting headers: %w", err)
	}
	if count > 0 {
		slog.Info("header already exists, skipping seed")
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	qtx := queries.WithTx(tx)
	now := time.Now().UTC()

	headerID := uuid.NewString()
	if err := qtx.CreateHeader(ctx, CreateHeaderParams{
		ID:           headerID,
		Name:         DefaultHeaderName,
		Description:  DefaultHeaderDescription,
		CreationTime: now,
	}); err != nil {
		return fmt.Errorf("creating default header: %w", err)
	}

	introID := uuid.NewString()
	if err := qtx.CreateIntroduction(ctx, CreateIntroductionParams{
		ID:           introID,
		Header:       DefaultIntroductionHeader,
		Description:  DefaultIntroductionText,
		Title:        DefaultIntroductionTitle,
		CreationTime: now,
	}); err != nil {
		return fmt.Errorf("creating default introduction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}

	slog.Info("seeded default content", "header_id", headerID, "introduction_id", introID)
	return nil
}
