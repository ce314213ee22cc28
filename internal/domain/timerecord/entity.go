package timerecord

import (
	"time"
)

// Status classifies a clock-in/clock-out pair against the employee's
// configured work window.
type Status string

const (
	StatusNormal        Status = "Normal"
	StatusLate          Status = "Late"
	StatusEarlyLeave    Status = "EarlyLeave"
	StatusOvertime      Status = "Overtime"
	StatusLateEarly     Status = "Late+EarlyLeave"
	StatusLateOvertime  Status = "Late+Overtime"
	StatusSettingsError Status = "SettingsError"
)

// StatusSeparator joins compound status parts ("Late" + "Overtime").
const StatusSeparator = "+"

type TimeRecord struct {
	ID            string
	EmployeeID    string
	RecordDate    string // YYYY-MM-DD, resolved in UTC+9
	ClockIn       *time.Time
	ClockOut      *time.Time
	Status        Status
	WorkHours     float64
	IsManualEntry bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined for list views
	EmployeeName *string
	Department   *string
}

// RecordWithSchedule pairs a completed record with its employee's configured
// work window, as loaded for bulk recalculation.
type RecordWithSchedule struct {
	Record    TimeRecord
	StartTime string
	EndTime   string
}
