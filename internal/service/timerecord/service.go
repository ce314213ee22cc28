package timerecord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kintai-app/timeclock-backend-go/internal/domain/audit"
	"github.com/kintai-app/timeclock-backend-go/internal/domain/employee"
	"github.com/kintai-app/timeclock-backend-go/internal/domain/timerecord"
	"github.com/kintai-app/timeclock-backend-go/internal/pkg/database"
	"github.com/kintai-app/timeclock-backend-go/internal/pkg/timeutil"
	"github.com/kintai-app/timeclock-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

// DefaultCleanupWindowDays is the retention window applied when a cleanup
// request does not specify one.
const DefaultCleanupWindowDays = 30

type TimeRecordServiceImpl struct {
	db *database.DB
	timerecord.TimeRecordRepository
	employee.EmployeeRepository
	audit.AuditRepository

	now  func() time.Time
	inTx func(ctx context.Context, fn func(tx pgx.Tx) error) error
}

// timePtrToString safely converts a *time.Time to an RFC3339 string in the
// record's local zone.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.In(timeutil.JST).Format(time.RFC3339)
	return &formatted
}

// localPtr shifts an optional instant into the record's local zone for
// wall-clock classification.
func localPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	local := t.In(timeutil.JST)
	return &local
}

// toResponse maps a record to its API shape. Clock instants are rendered in
// the record's local zone and work hours rounded for display.
func toResponse(rec timerecord.TimeRecord) timerecord.TimeRecordResponse {
	return timerecord.TimeRecordResponse{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		EmployeeName:  rec.EmployeeName,
		Department:    rec.Department,
		RecordDate:    rec.RecordDate,
		ClockInTime:   timePtrToString(rec.ClockIn),
		ClockOutTime:  timePtrToString(rec.ClockOut),
		Status:        string(rec.Status),
		WorkHours:     RoundHours(rec.WorkHours),
		IsManualEntry: rec.IsManualEntry,
		CreatedAt:     rec.CreatedAt.In(timeutil.JST).Format(time.RFC3339),
		UpdatedAt:     rec.UpdatedAt.In(timeutil.JST).Format(time.RFC3339),
	}
}

// ClockIn implements timerecord.TimeRecordService.
func (s *TimeRecordServiceImpl) ClockIn(ctx context.Context, req timerecord.ClockInRequest, at time.Time) (timerecord.ClockInResponse, error) {
	if err := req.Validate(); err != nil {
		return timerecord.ClockInResponse{}, err
	}

	sched, err := s.EmployeeRepository.GetSchedule(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timerecord.ClockInResponse{}, employee.ErrEmployeeNotFound
		}
		return timerecord.ClockInResponse{}, fmt.Errorf("failed to get employee schedule: %w", err)
	}

	// The punching employee's own open records beyond the retention window are
	// purged opportunistically. Failures here never block the punch.
	boundary := timeutil.DateBoundary(at, DefaultCleanupWindowDays)
	if purged, err := s.TimeRecordRepository.DeleteStaleIncompleteForEmployee(ctx, req.EmployeeID, boundary); err != nil {
		slog.Error("failed to purge stale incomplete records", "employee_id", req.EmployeeID, "error", err)
	} else if purged > 0 {
		slog.Info("purged stale incomplete records", "employee_id", req.EmployeeID, "count", purged, "before_date", boundary)
	}

	recordDate := timeutil.RecordDate(at)
	inLocal := at.In(timeutil.JST)

	existing, err := s.TimeRecordRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, recordDate)
	if err != nil {
		return timerecord.ClockInResponse{}, fmt.Errorf("failed to get today's record: %w", err)
	}

	var rec timerecord.TimeRecord
	if existing != nil {
		// Repeated clock-in moves the arrival but keeps an already recorded
		// departure, so status and hours are recomputed against both.
		rec = *existing
		rec.ClockIn = &inLocal
		rec.Status = DetermineStatus(inLocal, localPtr(rec.ClockOut), sched.StartTime, sched.EndTime)
		rec.WorkHours = ComputeWorkHours(inLocal, rec.ClockOut)
		rec.IsManualEntry = false

		rows, err := s.TimeRecordRepository.Update(ctx, rec)
		if err != nil {
			return timerecord.ClockInResponse{}, fmt.Errorf("failed to update time record: %w", err)
		}
		if rows == 0 {
			return timerecord.ClockInResponse{}, timerecord.ErrRecordNotFound
		}
	} else {
		rec, err = s.TimeRecordRepository.Create(ctx, timerecord.TimeRecord{
			EmployeeID: req.EmployeeID,
			RecordDate: recordDate,
			ClockIn:    &inLocal,
			Status:     DetermineStatus(inLocal, nil, sched.StartTime, sched.EndTime),
			WorkHours:  0,
		})
		if err != nil {
			return timerecord.ClockInResponse{}, fmt.Errorf("failed to create time record: %w", err)
		}
	}

	return timerecord.ClockInResponse{
		Status: rec.Status,
		Record: toResponse(rec),
	}, nil
}

// ClockOut implements timerecord.TimeRecordService.
func (s *TimeRecordServiceImpl) ClockOut(ctx context.Context, req timerecord.ClockOutRequest, at time.Time) (timerecord.ClockOutResponse, error) {
	if err := req.Validate(); err != nil {
		return timerecord.ClockOutResponse{}, err
	}

	sched, err := s.EmployeeRepository.GetSchedule(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timerecord.ClockOutResponse{}, employee.ErrEmployeeNotFound
		}
		return timerecord.ClockOutResponse{}, fmt.Errorf("failed to get employee schedule: %w", err)
	}

	recordDate := timeutil.RecordDate(at)
	existing, err := s.TimeRecordRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, recordDate)
	if err != nil {
		return timerecord.ClockOutResponse{}, fmt.Errorf("failed to get today's record: %w", err)
	}
	if existing == nil || existing.ClockIn == nil {
		return timerecord.ClockOutResponse{}, timerecord.ErrNotClockedIn
	}

	outLocal := at.In(timeutil.JST)
	rec := *existing
	rec.ClockOut = &outLocal
	rec.Status = DetermineStatus(rec.ClockIn.In(timeutil.JST), &outLocal, sched.StartTime, sched.EndTime)
	rec.WorkHours = ComputeWorkHours(*rec.ClockIn, &outLocal)

	rows, err := s.TimeRecordRepository.Update(ctx, rec)
	if err != nil {
		return timerecord.ClockOutResponse{}, fmt.Errorf("failed to update time record: %w", err)
	}
	if rows == 0 {
		return timerecord.ClockOutResponse{}, timerecord.ErrRecordNotFound
	}

	return timerecord.ClockOutResponse{
		Status:    rec.Status,
		WorkHours: RoundHours(rec.WorkHours),
		Record:    toResponse(rec),
	}, nil
}

// GetTodayRecord implements timerecord.TimeRecordService. Returns nil when
// the employee has no record for the current day.
func (s *TimeRecordServiceImpl) GetTodayRecord(ctx context.Context, employeeID string, at time.Time) (*timerecord.TimeRecordResponse, error) {
	rec, err := s.TimeRecordRepository.GetByEmployeeAndDate(ctx, employeeID, timeutil.RecordDate(at))
	if err != nil {
		return nil, fmt.Errorf("failed to get today's record: %w", err)
	}
	if rec == nil {
		return nil, nil
	}
	resp := toResponse(*rec)
	return &resp, nil
}

// ListRecords implements timerecord.TimeRecordService.
func (s *TimeRecordServiceImpl) ListRecords(ctx context.Context) ([]timerecord.TimeRecordResponse, error) {
	recs, err := s.TimeRecordRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list time records: %w", err)
	}

	responses := make([]timerecord.TimeRecordResponse, 0, len(recs))
	for _, rec := range recs {
		responses = append(responses, toResponse(rec))
	}
	return responses, nil
}

// ListEmployeeRecords implements timerecord.TimeRecordService.
func (s *TimeRecordServiceImpl) ListEmployeeRecords(ctx context.Context, employeeID string, year, month string) ([]timerecord.TimeRecordResponse, error) {
	if _, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	recs, err := s.TimeRecordRepository.ListByEmployee(ctx, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee records: %w", err)
	}

	responses := make([]timerecord.TimeRecordResponse, 0, len(recs))
	for _, rec := range recs {
		responses = append(responses, toResponse(rec))
	}
	return responses, nil
}

// CorrectRecord implements timerecord.TimeRecordService.
func (s *TimeRecordServiceImpl) CorrectRecord(ctx context.Context, req timerecord.CorrectRecordRequest) (timerecord.TimeRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return timerecord.TimeRecordResponse{}, err
	}

	sched, err := s.EmployeeRepository.GetSchedule(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timerecord.TimeRecordResponse{}, employee.ErrEmployeeNotFound
		}
		return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to get employee schedule: %w", err)
	}

	inLocal := req.ClockIn().In(timeutil.JST)
	outLocal := localPtr(req.ClockOut())

	rec := timerecord.TimeRecord{
		EmployeeID:    req.EmployeeID,
		RecordDate:    req.RecordDate,
		ClockIn:       &inLocal,
		ClockOut:      outLocal,
		Status:        DetermineStatus(inLocal, outLocal, sched.StartTime, sched.EndTime),
		WorkHours:     ComputeWorkHours(inLocal, outLocal),
		IsManualEntry: true,
	}

	switch req.Action {
	case timerecord.ActionUpdate:
		rows, err := s.TimeRecordRepository.Update(ctx, rec)
		if err != nil {
			return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to update time record: %w", err)
		}
		if rows == 0 {
			return timerecord.TimeRecordResponse{}, timerecord.ErrRecordNotFound
		}

	case timerecord.ActionDeleteAndCreate:
		err = s.inTx(ctx, func(tx pgx.Tx) error {
			txCtx := context.WithValue(ctx, "tx", tx)

			if _, err := s.TimeRecordRepository.Delete(txCtx, req.EmployeeID, req.RecordDate); err != nil {
				return fmt.Errorf("failed to delete time record: %w", err)
			}

			created, err := s.TimeRecordRepository.Create(txCtx, rec)
			if err != nil {
				return fmt.Errorf("failed to recreate time record: %w", err)
			}
			rec = created
			return nil
		})
		if err != nil {
			return timerecord.TimeRecordResponse{}, err
		}

	default:
		return timerecord.TimeRecordResponse{}, timerecord.ErrInvalidAction
	}

	s.appendAudit(ctx, audit.Entry{
		TableName: audit.TableTimeRecords,
		RecordID:  audit.RecordID(req.EmployeeID, req.RecordDate),
		Action:    correctionAction(req.Action),
		Reason:    req.Reason,
	})

	if fresh, err := s.TimeRecordRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, req.RecordDate); err == nil && fresh != nil {
		rec = *fresh
	}
	return toResponse(rec), nil
}

// DeleteRecord implements timerecord.TimeRecordService.
func (s *TimeRecordServiceImpl) DeleteRecord(ctx context.Context, req timerecord.DeleteRecordRequest) (timerecord.DeleteRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return timerecord.DeleteRecordResponse{}, err
	}

	deleted, err := s.TimeRecordRepository.Delete(ctx, req.EmployeeID, req.RecordDate)
	if err != nil {
		return timerecord.DeleteRecordResponse{}, fmt.Errorf("failed to delete time record: %w", err)
	}
	if deleted == 0 {
		return timerecord.DeleteRecordResponse{}, timerecord.ErrRecordNotFound
	}

	s.appendAudit(ctx, audit.Entry{
		TableName: audit.TableTimeRecords,
		RecordID:  audit.RecordID(req.EmployeeID, req.RecordDate),
		Action:    audit.ActionDelete,
		Reason:    req.Reason,
	})

	return timerecord.DeleteRecordResponse{DeletedCount: deleted}, nil
}

// CleanupIncomplete implements timerecord.TimeRecordService.
func (s *TimeRecordServiceImpl) CleanupIncomplete(ctx context.Context, windowDays int) (timerecord.CleanupResponse, error) {
	if windowDays <= 0 {
		windowDays = DefaultCleanupWindowDays
	}
	boundary := timeutil.DateBoundary(s.now(), windowDays)

	found, err := s.TimeRecordRepository.ListStaleIncomplete(ctx, boundary)
	if err != nil {
		return timerecord.CleanupResponse{}, fmt.Errorf("failed to list stale incomplete records: %w", err)
	}

	resp := timerecord.CleanupResponse{
		FoundRecords: make([]timerecord.TimeRecordResponse, 0, len(found)),
	}
	for _, rec := range found {
		resp.FoundRecords = append(resp.FoundRecords, toResponse(rec))
	}
	if len(found) == 0 {
		return resp, nil
	}

	deleted, err := s.TimeRecordRepository.DeleteStaleIncomplete(ctx, boundary)
	if err != nil {
		return timerecord.CleanupResponse{}, fmt.Errorf("failed to delete stale incomplete records: %w", err)
	}
	resp.CleanedCount = deleted

	s.appendAudit(ctx, audit.Entry{
		TableName: audit.TableTimeRecords,
		RecordID:  "bulk-cleanup-" + boundary,
		Action:    audit.ActionBulkDelete,
		Reason:    fmt.Sprintf("removed %d incomplete records older than %d days", deleted, windowDays),
	})

	return resp, nil
}

// RecalculateAll implements timerecord.TimeRecordService. A row that fails to
// update is logged and skipped so one bad record never aborts the batch.
func (s *TimeRecordServiceImpl) RecalculateAll(ctx context.Context) (timerecord.RecalculateResponse, error) {
	rows, err := s.TimeRecordRepository.ListCompleteWithSchedules(ctx)
	if err != nil {
		return timerecord.RecalculateResponse{}, fmt.Errorf("failed to list complete records: %w", err)
	}

	resp := timerecord.RecalculateResponse{TotalConsidered: len(rows)}
	for _, row := range rows {
		rec := row.Record
		if rec.ClockIn == nil || rec.ClockOut == nil {
			continue
		}

		status := DetermineStatus(rec.ClockIn.In(timeutil.JST), localPtr(rec.ClockOut), row.StartTime, row.EndTime)
		hours := ComputeWorkHours(*rec.ClockIn, rec.ClockOut)
		if status == rec.Status && hours == rec.WorkHours {
			continue
		}

		if err := s.TimeRecordRepository.UpdateStatusAndHours(ctx, rec.ID, status, hours); err != nil {
			slog.Error("failed to recalculate record",
				"record_id", rec.ID,
				"employee_id", rec.EmployeeID,
				"record_date", rec.RecordDate,
				"error", err)
			continue
		}
		resp.UpdatedCount++
	}

	if resp.UpdatedCount > 0 {
		s.appendAudit(ctx, audit.Entry{
			TableName: audit.TableTimeRecords,
			RecordID:  "bulk-recalculate",
			Action:    audit.ActionBulkUpdate,
			Reason:    fmt.Sprintf("recalculated status for %d of %d records", resp.UpdatedCount, resp.TotalConsidered),
		})
	}

	return resp, nil
}

// appendAudit records the entry best-effort. The primary mutation has already
// committed, so a failed append is logged rather than surfaced.
func (s *TimeRecordServiceImpl) appendAudit(ctx context.Context, entry audit.Entry) {
	if err := s.AuditRepository.Append(ctx, entry); err != nil {
		slog.Error("failed to append audit entry",
			"record_id", entry.RecordID,
			"action", entry.Action,
			"error", err)
	}
}

func correctionAction(action string) string {
	if action == timerecord.ActionDeleteAndCreate {
		return audit.ActionDeleteAndCreate
	}
	return audit.ActionUpdate
}

func NewTimeRecordService(
	db *database.DB,
	timeRecordRepo timerecord.TimeRecordRepository,
	employeeRepo employee.EmployeeRepository,
	auditRepo audit.AuditRepository,
) timerecord.TimeRecordService {
	svc := &TimeRecordServiceImpl{
		db:                   db,
		TimeRecordRepository: timeRecordRepo,
		EmployeeRepository:   employeeRepo,
		AuditRepository:      auditRepo,
		now:                  time.Now,
	}
	svc.inTx = func(ctx context.Context, fn func(tx pgx.Tx) error) error {
		return postgresql.WithTransaction(ctx, svc.db, fn)
	}
	return svc
}
