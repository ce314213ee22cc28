package audit

import (
	"time"
)

// Actions recorded in the audit log.
const (
	ActionUpdate          = "update"
	ActionDelete          = "delete"
	ActionDeleteAndCreate = "delete_and_create"
	ActionBulkDelete      = "bulk_delete"
	ActionBulkUpdate      = "bulk_update"
)

// TableTimeRecords is the only audited table.
const TableTimeRecords = "time_records"

// Entry is one append-only audit log row. Entries are never mutated or
// deleted.
type Entry struct {
	ID        string
	TableName string
	RecordID  string // "<employee_id>-<record_date>" or a batch summary key
	Action    string
	Reason    string
	CreatedAt time.Time
}

// RecordID builds the composite identifier for one (employee, date) record.
func RecordID(employeeID, recordDate string) string {
	return employeeID + "-" + recordDate
}
