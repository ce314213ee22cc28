package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kintai-app/timeclock-backend-go/internal/domain/timerecord"
	"github.com/kintai-app/timeclock-backend-go/internal/pkg/session"
	"github.com/kintai-app/timeclock-backend-go/internal/pkg/timeutil"
)

type MaintenanceJobs struct {
	timeRecordService timerecord.TimeRecordService
	sessions          session.Store
	cleanupWindowDays int
}

func NewMaintenanceJobs(
	timeRecordService timerecord.TimeRecordService,
	sessions session.Store,
	cleanupWindowDays int,
) *MaintenanceJobs {
	return &MaintenanceJobs{
		timeRecordService: timeRecordService,
		sessions:          sessions,
		cleanupWindowDays: cleanupWindowDays,
	}
}

func (j *MaintenanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("cleanup_incomplete_records", 1*time.Hour, j.CleanupIncompleteRecords)
	scheduler.AddJob("cleanup_expired_sessions", 15*time.Minute, j.CleanupExpiredSessions)
}

// CleanupIncompleteRecords purges clock-ins that were never closed once they
// age past the retention window.
func (j *MaintenanceJobs) CleanupIncompleteRecords(ctx context.Context) error {
	// Only run shortly after the JST day rolls over (00:00-00:59)
	if time.Now().In(timeutil.JST).Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting incomplete record cleanup", "window_days", j.cleanupWindowDays)

	resp, err := j.timeRecordService.CleanupIncomplete(ctx, j.cleanupWindowDays)
	if err != nil {
		return fmt.Errorf("failed to clean up incomplete records: %w", err)
	}

	if resp.CleanedCount > 0 {
		slog.Info("Cron: Removed incomplete records", "count", resp.CleanedCount)
	} else {
		slog.Info("Cron: No incomplete records past retention")
	}
	return nil
}

// CleanupExpiredSessions drops idle employee sessions from the in-memory
// store.
func (j *MaintenanceJobs) CleanupExpiredSessions(ctx context.Context) error {
	if removed := j.sessions.CleanupExpired(); removed > 0 {
		slog.Info("Cron: Removed expired sessions", "count", removed)
	}
	return nil
}
