// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service holds the business logic behind the console: the letter
// archive with its activity trail, the dashboard aggregation and the
// security event log.
package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/mileusna/useragent"

	"github.com/olegiv/suratku/internal/model"
	"github.com/olegiv/suratku/internal/store"
)

// EventService provides event logging functionality.
type EventService struct {
	queries *store.Queries
	now     func() time.Time
}

// NewEventService creates a new EventService.
func NewEventService(db *sql.DB) *EventService {
	return &EventService{
		queries: store.New(db),
		now:     time.Now,
	}
}

// LogEvent creates a new event log entry.
func (s *EventService) LogEvent(ctx context.Context, level, category, message string, userID *int64, ipAddress string, metadata map[string]any) error {
	var nullUserID sql.NullInt64
	if userID != nil {
		nullUserID = sql.NullInt64{Int64: *userID, Valid: true}
	}

	metadataJSON := "{}"
	if len(metadata) > 0 {
		if b, err := json.Marshal(metadata); err == nil {
			metadataJSON = string(b)
		}
	}

	_, err := s.queries.CreateEvent(ctx, store.CreateEventParams{
		Level:     level,
		Category:  category,
		Message:   message,
		UserID:    nullUserID,
		IpAddress: ipAddress,
		Metadata:  metadataJSON,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("creating event: %w", err)
	}
	return nil
}

// LogAuthEvent records a login or logout. The user agent is reduced to
// browser, OS and device class before it is stored.
func (s *EventService) LogAuthEvent(ctx context.Context, level, message string, userID *int64, ipAddress, userAgent string, metadata map[string]any) {
	md := make(map[string]any, len(metadata)+3)
	for k, v := range metadata {
		md[k] = v
	}
	if userAgent != "" {
		ua := ParseUserAgent(userAgent)
		md["browser"] = ua.Browser
		md["os"] = ua.OS
		md["device"] = ua.DeviceType
	}

	if err := s.LogEvent(ctx, level, model.EventCategoryAuth, message, userID, ipAddress, md); err != nil {
		slog.Error("failed to log auth event", "error", err, "message", message)
	}
}

// LogSecurityEvent records a rejected request such as a cross-origin form post.
func (s *EventService) LogSecurityEvent(ctx context.Context, message, ipAddress string, metadata map[string]any) {
	if err := s.LogEvent(ctx, model.EventLevelWarning, model.EventCategorySecurity, message, nil, ipAddress, metadata); err != nil {
		slog.Error("failed to log security event", "error", err, "message", message)
	}
}

// ListEvents returns the most recent events of a category.
func (s *EventService) ListEvents(ctx context.Context, category string, limit int64) ([]store.Event, error) {
	events, err := s.queries.ListEventsByCategory(ctx, store.ListEventsByCategoryParams{
		Category: category,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s events: %w", category, err)
	}
	return events, nil
}

// DeleteOldEvents removes events older than the specified duration and
// returns how many were deleted.
func (s *EventService) DeleteOldEvents(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := s.now().UTC().Add(-olderThan)
	n, err := s.queries.DeleteOldEvents(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("deleting old events: %w", err)
	}
	return n, nil
}

// ParsedUA holds the parts of a user agent that are worth keeping.
type ParsedUA struct {
	Browser    string
	OS         string
	DeviceType string
}

// ParseUserAgent extracts browser, OS, and device type from a user agent string.
func ParseUserAgent(uaString string) ParsedUA {
	ua := useragent.Parse(uaString)

	result := ParsedUA{
		Browser: ua.Name,
		OS:      ua.OS,
	}
	if result.Browser == "" {
		result.Browser = "Unknown"
	}
	if result.OS == "" {
		result.OS = "Unknown"
	}

	switch {
	case ua.Mobile:
		result.DeviceType = "mobile"
	case ua.Tablet:
		result.DeviceType = "tablet"
	case ua.Bot:
		result.DeviceType = "bot"
	default:
		result.DeviceType = "desktop"
	}

	return result
}
