package postgresql

import (
	"context"
	"fmt"

	"github.com/kintai-app/timeclock-backend-go/internal/domain/audit"
	"github.com/kintai-app/timeclock-backend-go/internal/pkg/database"
)

type auditRepositoryImpl struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.AuditRepository {
	return &auditRepositoryImpl{db: db}
}

// Append implements audit.AuditRepository.
func (a *auditRepositoryImpl) Append(ctx context.Context, entry audit.Entry) error {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO audit_logs (table_name, record_id, action, reason)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := q.Exec(ctx, query, entry.TableName, entry.RecordID, entry.Action, entry.Reason); err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	return nil
}

// ListByRecord implements audit.AuditRepository.
func (a *auditRepositoryImpl) ListByRecord(ctx context.Context, recordID string) ([]audit.Entry, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, table_name, record_id, action, reason, created_at
		FROM audit_logs
		WHERE record_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, recordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []audit.Entry
	for rows.Next() {
		var entry audit.Entry
		err := rows.Scan(&entry.ID, &entry.TableName, &entry.RecordID, &entry.Action, &entry.Reason, &entry.CreatedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
