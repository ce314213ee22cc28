package audit

import (
	"context"
)

// AuditRepository appends audit entries. Appends are best-effort relative to
// the primary mutation: callers log failures and continue, they never roll
// back a committed correction because the audit write failed.
type AuditRepository interface {
	// Append inserts one entry
	Append(ctx context.Context, entry Entry) error

	// ListByRecord retrieves entries for one composite record ID, newest first
	ListByRecord(ctx context.Context, recordID string) ([]Entry, error)
}
