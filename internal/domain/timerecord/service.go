package timerecord

import (
	"context"
	"time"
)

// TimeRecordService defines business logic for clock events, administrator
// corrections and bulk maintenance.
type TimeRecordService interface {
	// ClockIn records an arrival for the employee's current UTC+9 day
	ClockIn(ctx context.Context, req ClockInRequest, at time.Time) (ClockInResponse, error)

	// ClockOut completes today's record and computes status and work hours
	ClockOut(ctx context.Context, req ClockOutRequest, at time.Time) (ClockOutResponse, error)

	// GetTodayRecord retrieves the employee's record for the current UTC+9 day
	GetTodayRecord(ctx context.Context, employeeID string, at time.Time) (*TimeRecordResponse, error)

	// ListRecords retrieves all records (admin view)
	ListRecords(ctx context.Context) ([]TimeRecordResponse, error)

	// ListEmployeeRecords retrieves one employee's records with an optional
	// year/month filter
	ListEmployeeRecords(ctx context.Context, employeeID string, year, month string) ([]TimeRecordResponse, error)

	// CorrectRecord applies an administrator correction, either in place or by
	// delete-and-recreate, and appends one audit entry
	CorrectRecord(ctx context.Context, req CorrectRecordRequest) (TimeRecordResponse, error)

	// DeleteRecord removes one (employee, date) record with an audit entry
	DeleteRecord(ctx context.Context, req DeleteRecordRequest) (DeleteRecordResponse, error)

	// CleanupIncomplete purges records with no clock-out older than the
	// retention window (days). A non-positive window uses the default.
	CleanupIncomplete(ctx context.Context, windowDays int) (CleanupResponse, error)

	// RecalculateAll recomputes status and work hours for every completed
	// record, isolating per-row failures
	RecalculateAll(ctx context.Context) (RecalculateResponse, error)
}
