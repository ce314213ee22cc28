package employee

import (
	"time"
)

type Employee struct {
	ID            string
	EmployeeID    string
	Name          string
	Department    *string
	WorkStartTime string
	WorkEndTime   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Schedule is the per-employee configured work window, stored as raw "HH:MM"
// strings. Values are parsed at status-determination time so a malformed
// configuration surfaces as a settings-error status, never as a silent
// fallback to a default schedule.
type Schedule struct {
	StartTime string
	EndTime   string
}
