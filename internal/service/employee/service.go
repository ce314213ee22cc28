package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kintai-app/timeclock-backend-go/internal/domain/employee"
	"github.com/kintai-app/timeclock-backend-go/internal/pkg/timeutil"
	"github.com/jackc/pgx/v5"
)

// Default work window applied when a new employee is registered without one.
const (
	DefaultWorkStartTime = "09:00"
	DefaultWorkEndTime   = "17:00"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:            emp.ID,
		EmployeeID:    emp.EmployeeID,
		Name:          emp.Name,
		Department:    emp.Department,
		WorkStartTime: emp.WorkStartTime,
		WorkEndTime:   emp.WorkEndTime,
		CreatedAt:     emp.CreatedAt.In(timeutil.JST).Format(time.RFC3339),
		UpdatedAt:     emp.UpdatedAt.In(timeutil.JST).Format(time.RFC3339),
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee code: %w", err)
	}

	startTime := req.WorkStartTime
	if startTime == "" {
		startTime = DefaultWorkStartTime
	}
	endTime := req.WorkEndTime
	if endTime == "" {
		endTime = DefaultWorkEndTime
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		EmployeeID:    req.EmployeeID,
		Name:          req.Name,
		Department:    req.Department,
		WorkStartTime: startTime,
		WorkEndTime:   endTime,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return toResponse(created), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	emps, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(emps))
	for _, emp := range emps {
		responses = append(responses, toResponse(emp))
	}
	return responses, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	// The employee code is mutable, so guard against stealing another
	// employee's code.
	if existing, err := s.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID); err == nil {
		if existing.ID != req.ID {
			return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
		}
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee code: %w", err)
	}

	emp := employee.Employee{
		ID:            req.ID,
		EmployeeID:    req.EmployeeID,
		Name:          req.Name,
		Department:    req.Department,
		WorkStartTime: req.WorkStartTime,
		WorkEndTime:   req.WorkEndTime,
	}
	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	fresh, err := s.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to reload employee: %w", err)
	}
	return toResponse(fresh), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
