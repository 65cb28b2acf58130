// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs the periodic maintenance jobs.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultPurgeSchedule runs the event purge once a day at midnight.
const DefaultPurgeSchedule = "@daily"

// EventPurger deletes events older than a duration.
type EventPurger interface {
	DeleteOldEvents(ctx context.Context, olderThan time.Duration) (int64, error)
}

// Scheduler prunes the security event log. Activity logs are never touched.
type Scheduler struct {
	events    EventPurger
	retention time.Duration
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// New creates a new scheduler instance.
func New(events EventPurger, retention time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		events:    events,
		retention: retention,
		schedule:  DefaultPurgeSchedule,
		cron:      cron.New(),
		logger:    logger,
	}
}

// Start registers the purge job and starts the cron runner.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		if _, err := s.PurgeEvents(context.Background()); err != nil {
			s.logger.Error("failed to purge old events", "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()), "event_retention", s.retention)
	return nil
}

// Stop gracefully stops the scheduler and waits for a running job.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// PurgeEvents deletes events older than the retention period.
func (s *Scheduler) PurgeEvents(ctx context.Context) (int64, error) {
	n, err := s.events.DeleteOldEvents(ctx, s.retention)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("purged old events", "count", n, "older_than", s.retention)
	}
	return n, nil
}
