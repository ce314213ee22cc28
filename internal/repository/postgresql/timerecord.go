package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/kintai-app/timeclock-backend-go/internal/domain/timerecord"
	"github.com/kintai-app/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type timeRecordRepositoryImpl struct {
	db *database.DB
}

func NewTimeRecordRepository(db *database.DB) timerecord.TimeRecordRepository {
	return &timeRecordRepositoryImpl{db: db}
}

const timeRecordColumns = `
	id, employee_id, record_date::text, clock_in_time, clock_out_time,
	status, work_hours, is_manual_entry, created_at, updated_at
`

func scanTimeRecord(row pgx.Row) (timerecord.TimeRecord, error) {
	var rec timerecord.TimeRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.RecordDate, &rec.ClockIn, &rec.ClockOut,
		&rec.Status, &rec.WorkHours, &rec.IsManualEntry, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Create implements timerecord.TimeRecordRepository.
func (t *timeRecordRepositoryImpl) Create(ctx context.Context, rec timerecord.TimeRecord) (timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		INSERT INTO time_records (employee_id, record_date, clock_in_time, clock_out_time, status, work_hours, is_manual_entry)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + timeRecordColumns

	created, err := scanTimeRecord(q.QueryRow(ctx, query,
		rec.EmployeeID, rec.RecordDate, rec.ClockIn, rec.ClockOut,
		rec.Status, rec.WorkHours, rec.IsManualEntry,
	))
	if err != nil {
		return timerecord.TimeRecord{}, fmt.Errorf("failed to create time record: %w", err)
	}

	return created, nil
}

// GetByEmployeeAndDate implements timerecord.TimeRecordRepository.
func (t *timeRecordRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, recordDate string) (*timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT ` + timeRecordColumns + `
		FROM time_records
		WHERE employee_id = $1 AND record_date = $2
	`

	rec, err := scanTimeRecord(q.QueryRow(ctx, query, employeeID, recordDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &rec, nil
}

// Update implements timerecord.TimeRecordRepository.
func (t *timeRecordRepositoryImpl) Update(ctx context.Context, rec timerecord.TimeRecord) (int64, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		UPDATE time_records
		SET clock_in_time = $1, clock_out_time = $2, status = $3,
			work_hours = $4, is_manual_entry = $5, updated_at = NOW()
		WHERE employee_id = $6 AND record_date = $7
	`

	tag, err := q.Exec(ctx, query,
		rec.ClockIn, rec.ClockOut, rec.Status, rec.WorkHours, rec.IsManualEntry,
		rec.EmployeeID, rec.RecordDate,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update time record: %w", err)
	}

	return tag.RowsAffected(), nil
}

// Delete implements timerecord.TimeRecordRepository.
func (t *timeRecordRepositoryImpl) Delete(ctx context.Context, employeeID string, recordDate string) (int64, error) {
	q := GetQuerier(ctx, t.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM time_records WHERE employee_id = $1 AND record_date = $2`,
		employeeID, recordDate,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete time record: %w", err)
	}

	return tag.RowsAffected(), nil
}

// List implements timerecord.TimeRecordRepository.
func (t *timeRecordRepositoryImpl) List(ctx context.Context) ([]timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT tr.id, tr.employee_id, tr.record_date::text, tr.clock_in_time, tr.clock_out_time,
			tr.status, tr.work_hours, tr.is_manual_entry, tr.created_at, tr.updated_at,
			e.name, e.department
		FROM time_records tr
		LEFT JOIN employees e ON e.employee_id = tr.employee_id
		ORDER BY tr.record_date DESC, tr.employee_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []timerecord.TimeRecord
	for rows.Next() {
		var rec timerecord.TimeRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.RecordDate, &rec.ClockIn, &rec.ClockOut,
			&rec.Status, &rec.WorkHours, &rec.IsManualEntry, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName, &rec.Department,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ListByEmployee implements timerecord.TimeRecordRepository.
func (t *timeRecordRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, year, month string) ([]timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT ` + timeRecordColumns + `
		FROM time_records
		WHERE employee_id = $1
	`
	args := []interface{}{employeeID}

	if year != "" && month != "" {
		y, err := strconv.Atoi(year)
		if err != nil {
			return nil, fmt.Errorf("invalid year %q: %w", year, err)
		}
		m, err := strconv.Atoi(month)
		if err != nil {
			return nil, fmt.Errorf("invalid month %q: %w", month, err)
		}
		query += ` AND EXTRACT(YEAR FROM record_date) = $2 AND EXTRACT(MONTH FROM record_date) = $3`
		args = append(args, y, m)
	}
	query += ` ORDER BY record_date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []timerecord.TimeRecord
	for rows.Next() {
		rec, err := scanTimeRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ListStaleIncomplete implements timerecord.TimeRecordRepository. The date
// boundary is computed by the caller and arrives as a bound parameter.
func (t *timeRecordRepositoryImpl) ListStaleIncomplete(ctx context.Context, beforeDate string) ([]timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT ` + timeRecordColumns + `
		FROM time_records
		WHERE clock_out_time IS NULL AND record_date < $1
		ORDER BY record_date
	`

	rows, err := q.Query(ctx, query, beforeDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []timerecord.TimeRecord
	for rows.Next() {
		rec, err := scanTimeRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// DeleteStaleIncomplete implements timerecord.TimeRecordRepository.
func (t *timeRecordRepositoryImpl) DeleteStaleIncomplete(ctx context.Context, beforeDate string) (int64, error) {
	q := GetQuerier(ctx, t.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM time_records WHERE clock_out_time IS NULL AND record_date < $1`,
		beforeDate,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale incomplete records: %w", err)
	}

	return tag.RowsAffected(), nil
}

// DeleteStaleIncompleteForEmployee implements timerecord.TimeRecordRepository.
func (t *timeRecordRepositoryImpl) DeleteStaleIncompleteForEmployee(ctx context.Context, employeeID string, beforeDate string) (int64, error) {
	q := GetQuerier(ctx, t.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM time_records WHERE employee_id = $1 AND clock_out_time IS NULL AND record_date < $2`,
		employeeID, beforeDate,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale incomplete records: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ListCompleteWithSchedules implements timerecord.TimeRecordRepository.
func (t *timeRecordRepositoryImpl) ListCompleteWithSchedules(ctx context.Context) ([]timerecord.RecordWithSchedule, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT tr.id, tr.employee_id, tr.record_date::text, tr.clock_in_time, tr.clock_out_time,
			tr.status, tr.work_hours, tr.is_manual_entry, tr.created_at, tr.updated_at,
			e.work_start_time, e.work_end_time
		FROM time_records tr
		JOIN employees e ON e.employee_id = tr.employee_id
		WHERE tr.clock_in_time IS NOT NULL AND tr.clock_out_time IS NOT NULL
		ORDER BY tr.record_date, tr.employee_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []timerecord.RecordWithSchedule
	for rows.Next() {
		var rws timerecord.RecordWithSchedule
		err := rows.Scan(
			&rws.Record.ID, &rws.Record.EmployeeID, &rws.Record.RecordDate,
			&rws.Record.ClockIn, &rws.Record.ClockOut,
			&rws.Record.Status, &rws.Record.WorkHours, &rws.Record.IsManualEntry,
			&rws.Record.CreatedAt, &rws.Record.UpdatedAt,
			&rws.StartTime, &rws.EndTime,
		)
		if err != nil {
			return nil, err
		}
		results = append(results, rws)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// UpdateStatusAndHours implements timerecord.TimeRecordRepository.
func (t *timeRecordRepositoryImpl) UpdateStatusAndHours(ctx context.Context, id string, status timerecord.Status, workHours float64) error {
	q := GetQuerier(ctx, t.db)

	tag, err := q.Exec(ctx,
		`UPDATE time_records SET status = $1, work_hours = $2, updated_at = NOW() WHERE id = $3`,
		status, workHours, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update status and hours: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timerecord.ErrRecordNotFound
	}

	return nil
}
