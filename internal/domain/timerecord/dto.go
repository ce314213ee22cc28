package timerecord

import (
	"time"

	"github.com/kintai-app/timeclock-backend-go/internal/pkg/validator"
)

// Correction actions accepted by the admin correction endpoint.
const (
	ActionUpdate          = "update"
	ActionDeleteAndCreate = "delete_and_create"
)

type ClockInRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockOutRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CorrectRecordRequest struct {
	Action       string  `json:"action"`
	EmployeeID   string  `json:"employee_id"`
	RecordDate   string  `json:"record_date"`
	ClockInTime  string  `json:"clock_in_time"`
	ClockOutTime *string `json:"clock_out_time,omitempty"`
	Reason       string  `json:"reason"`
}

func (r *CorrectRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Action, []string{ActionUpdate, ActionDeleteAndCreate}) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be either update or delete_and_create",
		})
	}

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.RecordDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "record_date",
			Message: "record_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.RecordDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "record_date",
			Message: "record_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.ClockInTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in_time",
			Message: "clock_in_time is required",
		})
	} else if _, ok := validator.IsValidDateTime(r.ClockInTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in_time",
			Message: "clock_in_time must be an ISO8601 timestamp",
		})
	}

	if r.ClockOutTime != nil && !validator.IsEmpty(*r.ClockOutTime) {
		if _, ok := validator.IsValidDateTime(*r.ClockOutTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_out_time",
				Message: "clock_out_time must be an ISO8601 timestamp",
			})
		}
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ClockIn returns the parsed clock-in instant. Call Validate first.
func (r *CorrectRecordRequest) ClockIn() time.Time {
	t, _ := validator.IsValidDateTime(r.ClockInTime)
	return t
}

// ClockOut returns the parsed clock-out instant, or nil when absent.
func (r *CorrectRecordRequest) ClockOut() *time.Time {
	if r.ClockOutTime == nil || validator.IsEmpty(*r.ClockOutTime) {
		return nil
	}
	t, ok := validator.IsValidDateTime(*r.ClockOutTime)
	if !ok {
		return nil
	}
	return &t
}

type DeleteRecordRequest struct {
	EmployeeID string `json:"employee_id"`
	RecordDate string `json:"record_date"`
	Reason     string `json:"reason"`
}

func (r *DeleteRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.RecordDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "record_date",
			Message: "record_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.RecordDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "record_date",
			Message: "record_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CleanupRequest struct {
	WindowDays int `json:"window_days"`
}

type TimeRecordResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	Department    *string `json:"department,omitempty"`
	RecordDate    string  `json:"record_date"`
	ClockInTime   *string `json:"clock_in_time,omitempty"`
	ClockOutTime  *string `json:"clock_out_time,omitempty"`
	Status        string  `json:"status"`
	WorkHours     float64 `json:"work_hours"`
	IsManualEntry bool    `json:"is_manual_entry"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type ClockInResponse struct {
	Status Status             `json:"status"`
	Record TimeRecordResponse `json:"record"`
}

type ClockOutResponse struct {
	Status    Status             `json:"status"`
	WorkHours float64            `json:"work_hours"`
	Record    TimeRecordResponse `json:"record"`
}

type DeleteRecordResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

type CleanupResponse struct {
	CleanedCount int64                `json:"cleaned_count"`
	FoundRecords []TimeRecordResponse `json:"found_records"`
}

type RecalculateResponse struct {
	TotalConsidered int `json:"total_considered"`
	UpdatedCount    int `json:"updated_count"`
}
