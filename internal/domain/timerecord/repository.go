package timerecord

import (
	"context"
)

// TimeRecordRepository defines data access methods for time records. Records
// are keyed by (employee_id, record_date); the table carries a UNIQUE
// constraint on that pair.
type TimeRecordRepository interface {
	// Create inserts a new record
	Create(ctx context.Context, rec TimeRecord) (TimeRecord, error)

	// GetByEmployeeAndDate retrieves the record for one employee on one date.
	// Returns nil when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, recordDate string) (*TimeRecord, error)

	// Update rewrites the mutable fields of the record for (employee, date).
	// Returns the number of rows affected.
	Update(ctx context.Context, rec TimeRecord) (int64, error)

	// Delete removes the record(s) for (employee, date) and reports how many
	// rows were removed.
	Delete(ctx context.Context, employeeID string, recordDate string) (int64, error)

	// List retrieves all records joined with employee names, newest first
	List(ctx context.Context) ([]TimeRecord, error)

	// ListByEmployee retrieves one employee's records, optionally filtered to
	// a year/month ("2024", "03")
	ListByEmployee(ctx context.Context, employeeID string, year, month string) ([]TimeRecord, error)

	// ListStaleIncomplete retrieves records with no clock-out whose record
	// date is strictly before the given boundary (YYYY-MM-DD)
	ListStaleIncomplete(ctx context.Context, beforeDate string) ([]TimeRecord, error)

	// DeleteStaleIncomplete removes the records ListStaleIncomplete would
	// return and reports how many rows were removed
	DeleteStaleIncomplete(ctx context.Context, beforeDate string) (int64, error)

	// DeleteStaleIncompleteForEmployee removes one employee's open records
	// older than the boundary and reports how many rows were removed
	DeleteStaleIncompleteForEmployee(ctx context.Context, employeeID string, beforeDate string) (int64, error)

	// ListCompleteWithSchedules retrieves every record that has both clock-in
	// and clock-out set, joined with its employee's configured work window
	ListCompleteWithSchedules(ctx context.Context) ([]RecordWithSchedule, error)

	// UpdateStatusAndHours rewrites just the computed fields of one record
	UpdateStatusAndHours(ctx context.Context, id string, status Status, workHours float64) error
}
