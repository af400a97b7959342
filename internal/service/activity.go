package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"project_manager/internal/logger"
	"project_manager/internal/models"
	"project_manager/internal/repository"
)

// appendEvent records the audit entry for an already-committed mutation.
// The audit trail is best-effort: a failed append is logged and dropped.
func appendEvent(ctx context.Context, repo repository.EventRepo, e models.ActivityEvent) {
	if err := repo.Append(ctx, e); err != nil {
		logger.Get(logger.InfoLevel).Warnw("activity_append_failed", "err", err, "type", e.Type)
	}
}

type ActivityService struct {
	eventRepo repository.EventRepo
}

func NewActivityService(eventRepo repository.EventRepo) *ActivityService {
	return &ActivityService{eventRepo: eventRepo}
}

var errInvalidTimeRange = errors.New("invalid time range: From must be <= To")

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeEventType trims spaces and uppercases the event type filter.
func normalizeEventType(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

// normalizeAndValidateFilter prepares query parameters and validates the time range.
func normalizeAndValidateFilter(f EventFilter) (time.Time, time.Time, string, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, "", errInvalidTimeRange
	}

	return from, to, normalizeEventType(f.Type), nil
}

// List returns the user's own activity events matching the filter.
func (s *ActivityService) List(ctx context.Context, userID int, f EventFilter) ([]models.ActivityEvent, error) {
	from, to, typ, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, userID, from, to, typ)
}
