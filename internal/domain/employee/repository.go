package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	// Create inserts a new employee
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByEmployeeID retrieves an employee by its employee code
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)

	// GetSchedule retrieves just the configured work window for an employee
	GetSchedule(ctx context.Context, employeeID string) (Schedule, error)

	// List retrieves all employees ordered by employee code
	List(ctx context.Context) ([]Employee, error)

	// Update updates an existing employee by internal ID
	Update(ctx context.Context, emp Employee) error

	// Delete removes an employee by internal ID
	Delete(ctx context.Context, id string) error
}
