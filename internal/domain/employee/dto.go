package employee

import (
	"github.com/kintai-app/timeclock-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeID    string  `json:"employee_id"`
	Name          string  `json:"name"`
	Department    *string `json:"department,omitempty"`
	WorkStartTime string  `json:"work_start_time"`
	WorkEndTime   string  `json:"work_end_time"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.IsValidEmployeeCode(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id may only contain letters, digits, hyphen and underscore",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	// Empty schedule fields fall back to the company default at create time.
	if !validator.IsEmpty(r.WorkStartTime) && !validator.IsValidScheduleTime(r.WorkStartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_start_time",
			Message: "work_start_time must be in HH:MM format",
		})
	}
	if !validator.IsEmpty(r.WorkEndTime) && !validator.IsValidScheduleTime(r.WorkEndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_end_time",
			Message: "work_end_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID            string  `json:"-"`
	EmployeeID    string  `json:"employee_id"`
	Name          string  `json:"name"`
	Department    *string `json:"department,omitempty"`
	WorkStartTime string  `json:"work_start_time"`
	WorkEndTime   string  `json:"work_end_time"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidScheduleTime(r.WorkStartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_start_time",
			Message: "work_start_time must be in HH:MM format",
		})
	}
	if !validator.IsValidScheduleTime(r.WorkEndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_end_time",
			Message: "work_end_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	Name          string  `json:"name"`
	Department    *string `json:"department,omitempty"`
	WorkStartTime string  `json:"work_start_time"`
	WorkEndTime   string  `json:"work_end_time"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}
