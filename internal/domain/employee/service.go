package employee

import (
	"context"
)

// EmployeeService defines business logic for employee administration.
type EmployeeService interface {
	// CreateEmployee registers an employee with its work schedule
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// ListEmployees retrieves all employees
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// UpdateEmployee updates employee data including the work schedule
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an employee
	DeleteEmployee(ctx context.Context, id string) error
}
