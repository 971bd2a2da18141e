// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs periodic database housekeeping.
package scheduler

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/olegiv/portfolio-go/internal/store"
)

// maintenanceTimeout bounds a single housekeeping run.
const maintenanceTimeout = 2 * time.Minute

// Scheduler runs database maintenance on a cron schedule.
type Scheduler struct {
	db       *sql.DB
	cron     *cron.Cron
	logger   *slog.Logger
	schedule string
}

// New creates a new scheduler instance. schedule is a standard cron spec
// or descriptor such as "@daily".
func New(db *sql.DB, logger *slog.Logger, schedule string) *Scheduler {
	return &Scheduler{
		db:       db,
		cron:     cron.New(),
		logger:   logger,
		schedule: schedule,
	}
}

// Start registers the maintenance job and starts the scheduler.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		if err := s.RunMaintenance(context.Background()); err != nil {
			s.logger.Error("database maintenance failed", "category", "store", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("adding maintenance job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()), "schedule", s.schedule)
	return nil
}

// Stop gracefully stops the scheduler, waiting for a running job.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// RunMaintenance checkpoints the WAL and refreshes planner statistics.
func (s *Scheduler) RunMaintenance(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, maintenanceTimeout)
	defer cancel()

	start := time.Now()
	if err := store.Optimize(ctx, s.db); err != nil {
		return err
	}
	s.logger.Info("database maintenance completed", "duration", time.Since(start).Round(time.Millisecond))
	return nil
}
